package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dghubble/sling"
)

const timeout = 10 * time.Second

// apiBaseURL is a variable so tests can point the client at a local server
var apiBaseURL = "https://api.telegram.org/"

// Client represents a Telegram Bot API client
type Client struct {
	botToken   string
	chatID     string
	httpClient *http.Client
}

type sendMessageRequest struct {
	ChatID string `json:"chat_id"`
	Text   string `json:"text"`
}

// apiResponse is the envelope Telegram wraps every reply in
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description"`
}

// NewClient creates a new Telegram client
func NewClient(botToken, chatID string) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	return &Client{
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SendMessage sends a text message to the configured chat
func (c *Client) SendMessage(ctx context.Context, text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	// Tokens look like "123456:ABC-DEF", which url.Parse would read as a scheme if
	// given as a relative path, so the full endpoint URL is built here.
	endpoint := fmt.Sprintf("%sbot%s/sendMessage", apiBaseURL, c.botToken)

	api := sling.New().Client(c.httpClient)
	req, err := api.New().
		Post(endpoint).
		BodyJSON(&sendMessageRequest{ChatID: c.chatID, Text: text}).
		Request()
	if err != nil {
		return fmt.Errorf("creating request: %w", redact(err))
	}

	var success, failure apiResponse
	resp, err := api.Do(req.WithContext(ctx), &success, &failure)
	if resp == nil {
		return fmt.Errorf("sending request: %w", redact(err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if failure.Description != "" {
			return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, failure.Description)
		}
		return fmt.Errorf("telegram API error (status %d)", resp.StatusCode)
	}

	if err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	if !success.OK {
		return fmt.Errorf("telegram API error: %s", success.Description)
	}

	return nil
}

// redact drops the request URL from transport errors since it embeds the bot token
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
