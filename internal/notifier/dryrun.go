package notifier

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"
)

// DryRunNotifier prints what would be sent without sending it
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a new dry-run notifier writing to out
func NewDryRunNotifier(out io.Writer) *DryRunNotifier {
	return &DryRunNotifier{out: out}
}

// Notify prints the message that would be sent
func (n *DryRunNotifier) Notify(_ context.Context, message string) error {
	fmt.Fprintln(n.out, "--- Telegram message (dry run) ---")
	fmt.Fprintln(n.out, message)
	fmt.Fprintf(n.out, "(Length: %d characters)\n", utf8.RuneCountInString(message))
	return nil
}
