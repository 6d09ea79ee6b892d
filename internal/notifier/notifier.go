package notifier

import (
	"context"
	"time"

	"github.com/pfrederiksen/tour-watch/internal/logger"
)

// Notifier defines the interface for sending availability messages
type Notifier interface {
	// Notify sends message once
	Notify(ctx context.Context, message string) error
}

// Status describes what happened to a message
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
	StatusDryRun  Status = "dry-run"
)

// Delivery is the outcome of a notification attempt
type Delivery struct {
	Status Status
	Err    error
}

// Skipped records that no notification was attempted
func Skipped() Delivery {
	return Delivery{Status: StatusSkipped}
}

// Deliver sends message through n exactly once. Errors are logged and recorded in
// the returned Delivery; there is no retry.
func Deliver(ctx context.Context, n Notifier, message string) Delivery {
	start := time.Now()
	err := n.Notify(ctx, message)
	logger.RecordTiming("notify.send", time.Since(start))

	if err != nil {
		logger.IncrCounter("notify.failed")
		logger.Error("Error sending notification", logger.Fields{
			"length": len(message),
		}, err)
		return Delivery{Status: StatusFailed, Err: err}
	}

	logger.IncrCounter("notify.sent")
	logger.Info("Notification sent", logger.Fields{"length": len(message)})
	return Delivery{Status: StatusSent}
}
