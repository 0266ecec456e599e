package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/pfrederiksen/pto-notifier/internal/config"
	"github.com/pfrederiksen/pto-notifier/internal/event"
	"github.com/pfrederiksen/pto-notifier/internal/logger"
)

const (
	// DefaultTimeout bounds the whole listing, across all pages
	DefaultTimeout = 30 * time.Second

	orderByStartTime = "startTime"
)

// NewService creates a read-only Google Calendar service from the configured credentials.
// A service account file takes precedence over the API key.
func NewService(ctx context.Context, cfg *config.Config, opts ...option.ClientOption) (*gcal.Service, error) {
	switch {
	case cfg.GoogleCredentialsFile != "":
		data, err := os.ReadFile(cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}

		creds, err := google.CredentialsFromJSON(ctx, data, gcal.CalendarReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("parsing credentials file: %w", err)
		}

		opts = append(opts, option.WithHTTPClient(oauth2.NewClient(ctx, creds.TokenSource)))
	case cfg.GoogleAPIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.GoogleAPIKey))
	default:
		return nil, fmt.Errorf("%w: %s or %s", config.ErrMissing, config.EnvGoogleAPIKey, config.EnvGoogleCredentialsFile)
	}

	service, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return service, nil
}

// Fetcher lists time-off events from one calendar
type Fetcher struct {
	service    *gcal.Service
	calendarID string
	log        *logger.Logger

	Timeout time.Duration
}

// NewFetcher creates a Fetcher for calendarID. A nil log uses the default logger.
func NewFetcher(service *gcal.Service, calendarID string, log *logger.Logger) *Fetcher {
	if log == nil {
		log = logger.Default()
	}
	return &Fetcher{
		service:    service,
		calendarID: calendarID,
		log:        log,
		Timeout:    DefaultTimeout,
	}
}

// Fetch returns every event overlapping the window, grouped by person.
// A listing error is returned with a nil map; events with unresolvable
// dates are logged and skipped.
func (f *Fetcher) Fetch(ctx context.Context, window event.Window) (event.EventsByPerson, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		logger.RecordTiming("calendar.fetch", time.Since(start))
	}()

	byPerson := event.EventsByPerson{}

	call := f.service.Events.List(f.calendarID).
		SingleEvents(true).
		OrderBy(orderByStartTime).
		TimeMin(window.MinRFC3339()).
		TimeMax(window.MaxRFC3339())

	err := call.Pages(ctx, func(page *gcal.Events) error {
		for _, item := range page.Items {
			evt, err := toTimeOffEvent(item)
			if err != nil {
				f.log.Warn("skipping event with unresolvable dates", logger.Fields{
					"event_id": item.Id,
					"summary":  item.Summary,
					"reason":   err.Error(),
				})
				continue
			}
			byPerson.Add(evt)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	logger.AddCounter("events.fetched", int64(byPerson.Count()))
	f.log.Info("fetched time off events", logger.Fields{
		"people": len(byPerson),
		"events": byPerson.Count(),
	})

	return byPerson, nil
}

// toTimeOffEvent converts a calendar item, resolving dates per the date-first rule
func toTimeOffEvent(item *gcal.Event) (*event.TimeOffEvent, error) {
	startDate, err := resolve(item.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	endDate, err := resolve(item.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return event.NewTimeOffEvent(item.Summary, startDate, endDate), nil
}

func resolve(dt *gcal.EventDateTime) (string, error) {
	if dt == nil {
		return "", fmt.Errorf("missing")
	}
	return event.ResolveDate(dt.Date, dt.DateTime)
}
