package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/pfrederiksen/pto-notifier/internal/telegram"
)

// Telegram Markdown has no emoji shortcodes
var shortcodeReplacer = strings.NewReplacer(headerEmoji, "🌴")

// TelegramNotifier posts the summary through the Telegram Bot API.
// The channel passed to Notify is the chat ID.
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a notifier around an existing Telegram client
func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

// Notify sends text to the chat identified by channel
func (n *TelegramNotifier) Notify(ctx context.Context, channel, text string) error {
	if err := n.client.SendMessage(ctx, channel, shortcodeReplacer.Replace(text), telegram.ParseModeMarkdown); err != nil {
		return fmt.Errorf("sending telegram message to %s: %w", channel, err)
	}
	return nil
}
