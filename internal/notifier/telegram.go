package notifier

import (
	"context"
	"fmt"

	"github.com/pfrederiksen/tour-watch/internal/telegram"
)

// TelegramNotifier sends messages to a Telegram chat
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a notifier for the given bot token and chat ID
func NewTelegramNotifier(botToken, chatID string) (*TelegramNotifier, error) {
	client, err := telegram.NewClient(botToken, chatID)
	if err != nil {
		return nil, fmt.Errorf("initializing Telegram client: %w", err)
	}
	return &TelegramNotifier{client: client}, nil
}

// Notify posts message to the configured chat
func (n *TelegramNotifier) Notify(ctx context.Context, message string) error {
	return n.client.SendMessage(ctx, message)
}
