package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hackwatch/internal/scraper"
)

var flagReportFormat string

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print all active hackathons grouped by urgency",
		RunE:  runReport,
	}
	cmd.Flags().StringVar(&flagReportFormat, "format", "text", "Output format: text or json")
	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err := cfg.ValidateScrape(); err != nil {
		return err
	}

	format := ReportFormat(strings.ToLower(flagReportFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagReportFormat)
	}

	records := scraper.New(cfg.Devpost.Username).Active(cfg.Devpost.MaxPages)
	report := BuildReport(records, cfg.Devpost.Username, time.Now())
	return WriteReport(os.Stdout, report, format)
}
