package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/slack-go/slack"
)

// DefaultSlackTimeout bounds a single chat.postMessage call
const DefaultSlackTimeout = 10 * time.Second

// SlackNotifier posts the summary with chat.postMessage
type SlackNotifier struct {
	client *slack.Client
}

// NewSlackNotifier creates a Slack notifier for a bot token.
// Extra options are applied after the defaults, so tests can override the API URL.
func NewSlackNotifier(token string, timeout time.Duration, opts ...slack.Option) (*SlackNotifier, error) {
	if token == "" {
		return nil, fmt.Errorf("slack token is required")
	}
	if timeout <= 0 {
		timeout = DefaultSlackTimeout
	}

	options := append([]slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: timeout}),
	}, opts...)

	return &SlackNotifier{client: slack.New(token, options...)}, nil
}

// Notify posts text to channel as mrkdwn. A response with ok=false is returned as an
// error carrying Slack's error code (for example "channel_not_found").
func (n *SlackNotifier) Notify(ctx context.Context, channel, text string) error {
	if channel == "" {
		return fmt.Errorf("channel is required")
	}

	params := slack.NewPostMessageParameters()
	params.Markdown = true

	_, _, err := n.client.PostMessageContext(ctx, channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionPostMessageParameters(params),
	)
	if err != nil {
		return fmt.Errorf("posting message to %s: %w", channel, err)
	}
	return nil
}
