package notifier

import "context"

// Notifier defines the interface for delivering the summary message
type Notifier interface {
	// Notify posts text to channel
	Notify(ctx context.Context, channel, text string) error
}
