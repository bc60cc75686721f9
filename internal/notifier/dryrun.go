package notifier

import (
	"fmt"
	"io"
	"os"
	"strings"

	"hackwatch/internal/telegram"
	"hackwatch/internal/urgency"
)

// DryRunNotifier prints the alerts that would be sent without calling
// the Telegram API.
type DryRunNotifier struct {
	out io.Writer
}

// NewDryRunNotifier creates a dry-run notifier writing to stdout.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{out: os.Stdout}
}

// Notify prints each alert message. Every record counts as sent.
func (n *DryRunNotifier) Notify(records []*urgency.Scored) Result {
	banner := strings.Repeat("=", 60)

	for i, rec := range records {
		fmt.Fprintf(n.out, "%s\nDRY RUN - would send %d/%d:\n%s\n", banner, i+1, len(records), banner)
		fmt.Fprintln(n.out, telegram.FormatMessage(rec))
		fmt.Fprintln(n.out)
	}

	return Result{Sent: len(records)}
}
