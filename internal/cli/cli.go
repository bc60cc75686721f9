package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"hackwatch/internal/config"
	"hackwatch/internal/logger"
	"hackwatch/internal/notifier"
	"hackwatch/internal/scraper"
	"hackwatch/internal/state"
	"hackwatch/internal/telegram"
	"hackwatch/internal/urgency"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDryRun bool
	flagForce  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hackwatch",
		Short: "Watch Devpost hackathon deadlines and alert via Telegram",
		Long: `Watch the hackathons on a Devpost profile and send Telegram alerts
as their submission deadlines approach. Alerts are ranked by urgency and
suppressed between runs so a cron schedule does not spam the chat.`,
		RunE: runWatch,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print alerts instead of sending them")
	cmd.Flags().BoolVar(&flagForce, "force", false, "Send alerts even if recently notified")

	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newTestConnectionCmd())

	return cmd
}

// setup loads configuration and points the default logger at it.
func setup() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("loading configuration: %w", err)
	}
	logger.SetDefault(logger.New(logger.ParseLevel(cfg.Logging.Level), os.Stderr))
	return cfg, nil
}

// runWatch is the main watch-cycle logic
func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	// The full required set applies even to dry runs; a watch cycle with
	// missing credentials always exits nonzero.
	if err := cfg.Validate(); err != nil {
		return err
	}

	dryRun := flagDryRun || cfg.Notify.DryRun

	start := time.Now()
	records := scraper.New(cfg.Devpost.Username).Active(cfg.Devpost.MaxPages)
	logger.RecordTiming("scrape", time.Since(start))
	logger.SetGauge("hackathons.active", float64(len(records)))

	fmt.Printf("Found %d active hackathons\n", len(records))
	if len(records) == 0 {
		fmt.Println("All clear! Nothing to watch.")
		return nil
	}

	scored := urgency.NewEngine(cfg.Notify.TopN).Process(records, time.Now())
	for i, rec := range scored {
		fmt.Printf("  %d. %s %s (%s remaining)\n",
			i+1, urgency.Emoji(rec.Level), rec.Name, telegram.FormatCountdown(rec.HoursRemaining))
	}
	if len(scored) == 0 {
		fmt.Println("No deadlines within the next week.")
		return nil
	}

	store := state.New(cfg.State.File)

	due := scored
	if !flagForce {
		due = store.FilterForNotification(scored)
		if skipped := len(scored) - len(due); skipped > 0 {
			fmt.Printf("%d alert(s) suppressed by notification cooldown\n", skipped)
		}
	}
	if len(due) == 0 {
		fmt.Println("All caught up. No alerts due.")
		return nil
	}

	var n notifier.Notifier
	if dryRun {
		n = notifier.NewDryRunNotifier()
	} else {
		client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			return fmt.Errorf("creating Telegram client: %w", err)
		}
		n = notifier.NewTelegramNotifier(client)
	}

	res := n.Notify(due)

	// A dry run leaves the notification state untouched so the real run
	// still fires.
	if dryRun {
		return nil
	}

	if res.Failed > 0 {
		fmt.Printf("Sent %d alert(s), %d failed\n", res.Sent, res.Failed)
	} else {
		fmt.Printf("Sent %d alert(s)\n", res.Sent)
	}

	if !flagForce {
		for _, rec := range due {
			if err := store.RecordNotification(rec); err != nil {
				logger.Error("recording notification", logger.Fields{"hackathon": rec.Name}, err)
			}
		}
	}

	removed, err := store.CleanupOldEntries(cfg.State.RetentionDays)
	if err != nil {
		logger.Error("cleaning up state", nil, err)
	} else if removed > 0 {
		fmt.Printf("Cleaned up %d stale state entries\n", removed)
	}

	tracked, urls := store.Summary()
	logger.Debug("notification state", logger.Fields{"tracked": tracked, "urls": urls})
	logger.Debug("run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})

	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
