package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hackwatch/internal/scraper"
	"hackwatch/internal/tracker"
)

var flagAddDeadline string

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Track a hackathon hosted outside Devpost",
		Args:  cobra.ExactArgs(1),
		RunE:  runAdd,
	}
	cmd.Flags().StringVar(&flagAddDeadline, "deadline", "", "Override the deadline (YYYY-MM-DD)")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	rec, err := scraper.NewGeneric().Scrape(args[0])
	if err != nil {
		return fmt.Errorf("scraping %s: %w", args[0], err)
	}

	if flagAddDeadline != "" {
		day, err := time.Parse("2006-01-02", flagAddDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline %q (must be YYYY-MM-DD)", flagAddDeadline)
		}
		// Deadlines given as bare dates mean end of that day.
		rec.Deadline = time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 0, 0, time.UTC)
	}

	replaced, err := tracker.New(cfg.State.ExternalFile).Upsert(rec)
	if err != nil {
		return fmt.Errorf("saving tracked hackathon: %w", err)
	}

	if replaced {
		fmt.Printf("Updated %s (deadline %s)\n", rec.Name, rec.Deadline.Format("Jan 02, 2006"))
	} else {
		fmt.Printf("Tracking %s (deadline %s)\n", rec.Name, rec.Deadline.Format("Jan 02, 2006"))
	}
	return nil
}
