package cli

import (
	"context"
	"time"

	"github.com/pfrederiksen/pto-notifier/internal/event"
	"github.com/pfrederiksen/pto-notifier/internal/logger"
	"github.com/pfrederiksen/pto-notifier/internal/notifier"
)

// EventFetcher returns the time-off events overlapping a window
type EventFetcher interface {
	Fetch(ctx context.Context, window event.Window) (event.EventsByPerson, error)
}

// Runner executes one fetch-render-send cycle
type Runner struct {
	Fetcher  EventFetcher
	Notifier notifier.Notifier
	Channel  string
	Log      *logger.Logger
}

// Result describes what happened during a run.
// FetchErr and SendErr are recorded, not fatal: a failed fetch still sends a header-only message.
type Result struct {
	Text     string
	People   int
	Events   int
	FetchErr error
	SendErr  error
}

// Run fetches the events for now's UTC day and posts the summary to the channel
func (r *Runner) Run(ctx context.Context, now time.Time) *Result {
	log := r.Log
	if log == nil {
		log = logger.Default()
	}

	result := &Result{}

	events, err := r.Fetcher.Fetch(ctx, event.NewWindow(now))
	if err != nil {
		result.FetchErr = err
		log.Error("failed to fetch time off events", nil, err)
		events = event.EventsByPerson{}
	}

	result.People = len(events)
	result.Events = events.Count()
	result.Text = notifier.FormatDigest(events, now)

	start := time.Now()
	err = r.Notifier.Notify(ctx, r.Channel, result.Text)
	logger.RecordTiming("notify.send", time.Since(start))

	if err != nil {
		result.SendErr = err
		logger.IncrCounter("notify.failed")
		log.Error("failed to send message", logger.Fields{"channel": r.Channel}, err)
		return result
	}

	logger.IncrCounter("notify.sent")
	log.Info("message successfully sent", logger.Fields{
		"channel": r.Channel,
		"people":  result.People,
		"events":  result.Events,
	})
	return result
}
