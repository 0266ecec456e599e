package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pto-notifier/internal/calendar"
	"github.com/pfrederiksen/pto-notifier/internal/config"
	"github.com/pfrederiksen/pto-notifier/internal/logger"
	"github.com/pfrederiksen/pto-notifier/internal/notifier"
	"github.com/pfrederiksen/pto-notifier/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	// DefaultChannel is the Slack channel the summary is posted to
	DefaultChannel = "#internal-time-off-notifications"
)

var (
	flagChannel  string
	flagNotifier string
	flagEnvFile  string
	flagDryRun   bool
	flagVerbose  bool
	flagTimeout  time.Duration
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pto-notifier",
		Short: "Post today's approved PTO from a shared calendar to chat",
		Long: `Fetches today's (UTC) time-off events from the shared PTO Google Calendar
and posts a summary grouped by person to a Slack channel.

Calendar titles are expected in the form "<name> on <type>", e.g. "Alice on Vacation".
Fetch and delivery failures are logged; the command still exits 0 so a scheduler
does not retry it. Missing credentials exit 1.

Environment (or .env):
  SLACK_API_TOKEN          Slack bot token (notifier=slack)
  TELEGRAM_BOT_TOKEN       Telegram bot token (notifier=telegram)
  GOOGLE_API_KEY           Calendar API key
  GOOGLE_CREDENTIALS_FILE  Service account JSON (instead of GOOGLE_API_KEY)
  PTO_CALENDAR_ID          Calendar to read`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runNotify,
	}

	cmd.Flags().StringVar(&flagChannel, "channel", DefaultChannel, "Destination channel (Slack channel or Telegram chat ID)")
	cmd.Flags().StringVar(&flagNotifier, "notifier", config.BackendSlack, "Messaging backend: slack or telegram")
	cmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Optional .env file to load before reading the environment")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the message instead of posting it")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", calendar.DefaultTimeout, "Timeout for each API call")

	return cmd
}

// runNotify is the main command logic
func runNotify(cmd *cobra.Command, args []string) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	// Capture the run time once; it drives both the query window and the header
	now := time.Now().UTC()
	log := logger.New(level, os.Stdout).With(logger.Fields{"run_date": now.Format(notifier.HeaderDateLayout)})
	logger.SetDefault(log)

	cfg, err := config.Load(flagEnvFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(flagNotifier, flagDryRun); err != nil {
		return err
	}

	ctx := cmd.Context()

	service, err := calendar.NewService(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing calendar: %w", err)
	}

	fetcher := calendar.NewFetcher(service, cfg.CalendarID, log)
	fetcher.Timeout = flagTimeout

	n, err := newNotifier(cmd, cfg)
	if err != nil {
		return fmt.Errorf("initializing notifier: %w", err)
	}

	log.Debug("starting run", logger.Fields{
		"calendar_id": cfg.CalendarID,
		"channel":     flagChannel,
		"notifier":    flagNotifier,
		"dry_run":     flagDryRun,
	})

	runner := &Runner{
		Fetcher:  fetcher,
		Notifier: n,
		Channel:  flagChannel,
		Log:      log,
	}
	runner.Run(ctx, now)

	log.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	return nil
}

// newNotifier builds the messaging backend selected by flags
func newNotifier(cmd *cobra.Command, cfg *config.Config) (notifier.Notifier, error) {
	if flagDryRun {
		return notifier.NewDryRunNotifier(cmd.OutOrStdout()), nil
	}

	switch flagNotifier {
	case config.BackendTelegram:
		if flagChannel == DefaultChannel {
			return nil, fmt.Errorf("--channel must be a Telegram chat ID when using the telegram notifier")
		}
		client, err := telegram.NewClient(cfg.TelegramBotToken, flagTimeout)
		if err != nil {
			return nil, err
		}
		return notifier.NewTelegramNotifier(client), nil
	default:
		return notifier.NewSlackNotifier(cfg.SlackToken, flagTimeout)
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
