// Package telegram sends hackathon deadline alerts through the Telegram
// Bot API using plain HTTP requests.
//
// Authentication requires a bot token (from @BotFather) and a chat ID.
// Alert messages use Telegram's Markdown parse mode, so any scraped text
// interpolated into them must pass through EscapeMarkdown first.
package telegram
