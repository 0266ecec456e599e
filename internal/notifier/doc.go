// Package notifier renders the daily PTO summary and delivers it to a messaging channel.
//
// FormatDigest builds the message text. Slack is the primary destination; Telegram and a
// dry-run printer implement the same Notifier interface so the CLI can swap them by flag.
package notifier
