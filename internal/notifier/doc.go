// Package notifier delivers deadline alerts for scored hackathons.
//
// The TelegramNotifier pushes one message per hackathon through the
// Telegram Bot API with a short pause between sends. The DryRunNotifier
// prints the same messages to stdout for safe pipeline testing.
package notifier
