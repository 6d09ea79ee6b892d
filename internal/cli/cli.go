package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/tour-watch/internal/availability"
	"github.com/pfrederiksen/tour-watch/internal/logger"
	"github.com/pfrederiksen/tour-watch/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const (
	envBotToken = "TELEGRAM_BOT_TOKEN"
	envChatID   = "TELEGRAM_CHAT_ID"
)

var (
	flagYear        int
	flagMonth       int
	flagDates       []int
	flagCalendarURL string
	flagBotToken    string
	flagChatID      string
	flagDryRun      bool
	flagFormat      string
	flagLogLevel    string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tour-watch",
		Short: "Check Kilmainham Gaol tour availability and notify via Telegram",
		Long: `A CLI tool that checks the Kilmainham Gaol booking calendar for the requested
dates in one month and sends the bookable ones to a Telegram chat.

Telegram credentials are read from --bot-token/--chat-id or the TELEGRAM_BOT_TOKEN
and TELEGRAM_CHAT_ID environment variables. Without them the check still runs and
the notification is skipped.`,
		RunE:          runCheck,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.Flags().IntVar(&flagYear, "year", 2024, "Year to check (4 digits)")
	cmd.Flags().IntVar(&flagMonth, "month", 12, "Month to check (1-12)")
	cmd.Flags().IntSliceVar(&flagDates, "dates", []int{8, 9, 10}, "Days of the month to check (e.g., 8,9,10)")
	cmd.Flags().StringVar(&flagCalendarURL, "calendar-url", scraper.CalendarURL, "Booking calendar base URL")
	cmd.Flags().StringVar(&flagBotToken, "bot-token", "", "Telegram bot token (or env: "+envBotToken+")")
	cmd.Flags().StringVar(&flagChatID, "chat-id", "", "Telegram chat ID (or env: "+envChatID+")")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the message instead of sending it")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	return cmd
}

// runCheck is the main command logic
func runCheck(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}

	period, err := availability.NewPeriod(flagYear, flagMonth)
	if err != nil {
		return err
	}

	if err := availability.ValidateDays(flagDates); err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	runID := uuid.NewString()
	logger.SetDefault(logger.New(level, cmd.ErrOrStderr()).With(logger.Fields{"run_id": runID}))

	opts := Options{
		RunID:       runID,
		Period:      period,
		Dates:       flagDates,
		CalendarURL: flagCalendarURL,
		BotToken:    firstNonEmpty(flagBotToken, os.Getenv(envBotToken)),
		ChatID:      firstNonEmpty(flagChatID, os.Getenv(envChatID)),
		DryRun:      flagDryRun,
	}

	// Keep stdout parseable in JSON mode
	var dryRunOut io.Writer = cmd.OutOrStdout()
	if format == FormatJSON {
		dryRunOut = cmd.ErrOrStderr()
	}

	report := Run(cmd.Context(), opts, dryRunOut)

	if err := WriteOutput(cmd.OutOrStdout(), report, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Execute runs the CLI
func Execute() {
	os.Exit(execute(context.Background(), NewRootCmd(), os.Stderr))
}

// execute runs cmd until it finishes or the process is interrupted or terminated,
// and returns the process exit code
func execute(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}
