package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/tour-watch/internal/availability"
	"github.com/pfrederiksen/tour-watch/internal/logger"
	"github.com/pfrederiksen/tour-watch/internal/notifier"
	"github.com/pfrederiksen/tour-watch/internal/scraper"
	"github.com/pfrederiksen/tour-watch/internal/telegram"
)

// Options are the parameters of a single check
type Options struct {
	RunID       string
	Period      availability.Period
	Dates       []int
	CalendarURL string
	BotToken    string
	ChatID      string
	DryRun      bool
}

// Report is the outcome of a single check
type Report struct {
	RunID        string              `json:"run_id,omitempty"`
	CheckedAt    time.Time           `json:"checked_at"`
	Period       string              `json:"period"`
	URL          string              `json:"url"`
	Requested    []int               `json:"requested"`
	Available    []availability.Slot `json:"available"`
	FetchError   string              `json:"fetch_error,omitempty"`
	Message      string              `json:"message"`
	Notification notifier.Status     `json:"notification"`
	NotifyError  string              `json:"notify_error,omitempty"`
}

// newTelegramNotifier is a variable so tests can substitute the Telegram backend
var newTelegramNotifier = func(botToken, chatID string) (notifier.Notifier, error) {
	return notifier.NewTelegramNotifier(botToken, chatID)
}

// Run fetches availability, formats the message and delivers it at most once.
// Dry-run messages are printed to out. Run always completes; failures are logged
// and recorded in the returned Report.
func Run(ctx context.Context, opts Options, out io.Writer) *Report {
	sc := scraper.NewWithURL(opts.CalendarURL)
	dates := availability.UniqueDays(opts.Dates)

	requestURL, err := sc.RequestURL(opts.Period)
	if err != nil {
		requestURL = opts.CalendarURL
	}

	logger.Info("Checking availability", logger.Fields{
		"period": opts.Period.String(),
		"dates":  dates,
		"url":    requestURL,
	})

	result := sc.CheckAvailability(ctx, opts.Period, dates)
	message := telegram.FormatResult(result)

	report := &Report{
		RunID:     opts.RunID,
		CheckedAt: time.Now().UTC(),
		Period:    opts.Period.String(),
		URL:       requestURL,
		Requested: dates,
		Available: result.Slots,
		Message:   message,
	}
	if result.Err != nil {
		report.FetchError = result.Err.Error()
	}

	delivery := deliver(ctx, opts, message, out)
	report.Notification = delivery.Status
	if delivery.Err != nil {
		report.NotifyError = delivery.Err.Error()
	}

	logger.Debug("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return report
}

// deliver picks the notifier for opts and sends message through it
func deliver(ctx context.Context, opts Options, message string, out io.Writer) notifier.Delivery {
	if opts.DryRun {
		d := notifier.Deliver(ctx, notifier.NewDryRunNotifier(out), message)
		if d.Err == nil {
			d.Status = notifier.StatusDryRun
		}
		return d
	}

	if opts.BotToken == "" || opts.ChatID == "" {
		logger.Warn("Telegram bot token or chat ID not set", logger.Fields{
			"bot_token_set": opts.BotToken != "",
			"chat_id_set":   opts.ChatID != "",
		})
		return notifier.Skipped()
	}

	n, err := newTelegramNotifier(opts.BotToken, opts.ChatID)
	if err != nil {
		err = fmt.Errorf("creating notifier: %w", err)
		logger.Error("Error sending notification", nil, err)
		return notifier.Delivery{Status: notifier.StatusFailed, Err: err}
	}

	return notifier.Deliver(ctx, n, message)
}
