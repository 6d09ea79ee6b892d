// Package cli implements the command-line interface for tour-watch.
//
// The cli package provides the Cobra-based root command. A run fetches the booking
// calendar for one month, formats the bookable requested days into a message and
// sends it to Telegram when credentials are configured, then prints a report of
// what happened as text or JSON. Fetch and delivery failures are logged and shown
// in the report; they never fail the command.
package cli
