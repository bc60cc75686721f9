// Package cli implements the command-line interface for hackwatch.
//
// The cli package provides the Cobra-based CLI. The root command runs one
// watch cycle: scrape the configured Devpost profile, score deadlines by
// urgency, and send Telegram alerts for anything due. Subcommands print an
// urgency report (text/JSON), add externally tracked hackathons, and probe
// the Telegram bot setup.
package cli
