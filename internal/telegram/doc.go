// Package telegram provides a minimal Telegram Bot API client for posting the PTO summary.
//
// Only sendMessage is implemented. Authentication requires a bot token (from @BotFather);
// the destination chat ID is supplied per message.
package telegram
