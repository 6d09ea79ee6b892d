package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *Report) error {
	days := make([]string, 0, len(report.Requested))
	for _, d := range report.Requested {
		days = append(days, strconv.Itoa(d))
	}
	fmt.Fprintf(w, "Checked %s for dates: %s\n", report.Period, strings.Join(days, ", "))

	if report.FetchError != "" {
		fmt.Fprintf(w, "Error fetching availability: %s\n", report.FetchError)
	}

	if len(report.Available) == 0 {
		fmt.Fprintln(w, "No available tours found.")
	} else {
		for _, s := range report.Available {
			fmt.Fprintf(w, "  AVAILABLE %d: %s\n", s.Day, s.Link)
		}
		fmt.Fprintf(w, "\nTotal: %d of %d dates available\n", len(report.Available), len(report.Requested))
	}

	fmt.Fprintf(w, "Notification: %s\n", report.Notification)
	if report.NotifyError != "" {
		fmt.Fprintf(w, "Error sending notification: %s\n", report.NotifyError)
	}

	return nil
}
