// Package config loads pto-notifier credentials and identifiers from the environment.
//
// A .env file in the working directory is loaded first when present; variables already
// set in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvSlackToken            = "SLACK_API_TOKEN"
	EnvTelegramBotToken      = "TELEGRAM_BOT_TOKEN"
	EnvGoogleAPIKey          = "GOOGLE_API_KEY"
	EnvGoogleCredentialsFile = "GOOGLE_CREDENTIALS_FILE"
	EnvCalendarID            = "PTO_CALENDAR_ID"
)

// Supported messaging backends
const (
	BackendSlack    = "slack"
	BackendTelegram = "telegram"
)

// ErrMissing is returned when a required variable is not set
var ErrMissing = errors.New("missing required configuration")

// Config holds the secrets and identifiers for one run
type Config struct {
	SlackToken            string
	TelegramBotToken      string
	GoogleAPIKey          string
	GoogleCredentialsFile string // Service account JSON, used instead of the API key when set
	CalendarID            string
}

// Load reads .env files (default ".env") if they exist, then builds a Config from the environment.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only
func FromEnv() *Config {
	return &Config{
		SlackToken:            os.Getenv(EnvSlackToken),
		TelegramBotToken:      os.Getenv(EnvTelegramBotToken),
		GoogleAPIKey:          os.Getenv(EnvGoogleAPIKey),
		GoogleCredentialsFile: os.Getenv(EnvGoogleCredentialsFile),
		CalendarID:            os.Getenv(EnvCalendarID),
	}
}

// Validate checks that every credential needed by the chosen backend is present.
// A dry run does not need messaging credentials.
func (c *Config) Validate(backend string, dryRun bool) error {
	if !dryRun {
		switch backend {
		case BackendSlack:
			if c.SlackToken == "" {
				return missing(EnvSlackToken)
			}
		case BackendTelegram:
			if c.TelegramBotToken == "" {
				return missing(EnvTelegramBotToken)
			}
		default:
			return fmt.Errorf("unknown notifier %q (must be %q or %q)", backend, BackendSlack, BackendTelegram)
		}
	}

	if c.GoogleAPIKey == "" && c.GoogleCredentialsFile == "" {
		return missing(EnvGoogleAPIKey + " or " + EnvGoogleCredentialsFile)
	}

	if c.CalendarID == "" {
		return missing(EnvCalendarID)
	}

	return nil
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissing, name)
}
