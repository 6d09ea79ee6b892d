package telegram

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/tour-watch/internal/availability"
)

const tourName = "Kilmainham Gaol Tours"

// FormatAvailability formats the availability for a month as a plain-text message.
// Available days are listed one per line as "<day>: <link>" under a header naming
// the month; with nothing available the message is a single line saying so.
func FormatAvailability(period availability.Period, slots []availability.Slot) string {
	if len(slots) == 0 {
		return fmt.Sprintf("No available tours found for %s", period)
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("Available %s in %s:\n", tourName, period))
	for _, s := range slots {
		msg.WriteString(fmt.Sprintf("%d: %s\n", s.Day, s.Link))
	}

	return msg.String()
}

// FormatResult formats a checked Result
func FormatResult(result availability.Result) string {
	return FormatAvailability(result.Period, result.Slots)
}
