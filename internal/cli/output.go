package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
	"unicode/utf8"

	"hackwatch/internal/hackathon"
	"hackwatch/internal/urgency"
)

// ReportFormat specifies the report output format
type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
)

// maxNameLength keeps report lines readable; longer names are truncated.
const maxNameLength = 50

// Report is a point-in-time view of all active hackathons grouped by urgency.
type Report struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Username    string          `json:"username"`
	TotalActive int             `json:"total_active"`
	Sections    []ReportSection `json:"sections"`
}

// ReportSection groups the hackathons of one urgency level.
type ReportSection struct {
	Level urgency.Level `json:"level"`
	Title string        `json:"title"`
	Items []ReportItem  `json:"items"`
}

// ReportItem is one hackathon as it appears in the report.
type ReportItem struct {
	Name           string  `json:"name"`
	URL            string  `json:"url"`
	Deadline       string  `json:"deadline"`
	Countdown      string  `json:"countdown"`
	Prize          string  `json:"prize"`
	HoursRemaining float64 `json:"hours_remaining"`
}

// reportBands fixes the section order, most urgent first. IGNORE is
// counted in the total but never listed.
var reportBands = []struct {
	level urgency.Level
	title string
}{
	{urgency.Critical, "CRITICAL - Submit NOW (under 3 hours)"},
	{urgency.High, "HIGH - Submit today (under 12 hours)"},
	{urgency.Medium, "MEDIUM - Submit soon (under 48 hours)"},
	{urgency.Low, "LOW - This week (under 7 days)"},
}

// BuildReport groups active hackathons into urgency sections. Empty
// sections are omitted.
func BuildReport(records []*hackathon.Record, username string, now time.Time) *Report {
	byLevel := make(map[urgency.Level][]ReportItem)
	for _, rec := range records {
		hours := urgency.HoursRemaining(rec.Deadline, now)
		level := urgency.LevelFor(hours)
		if level == urgency.Ignore {
			continue
		}
		byLevel[level] = append(byLevel[level], ReportItem{
			Name:           truncate(rec.Name, maxNameLength),
			URL:            rec.URL,
			Deadline:       rec.Deadline.UTC().Format("Jan 02, 2006 03:04 PM"),
			Countdown:      shortCountdown(hours),
			Prize:          prizeLabel(rec.PrizeAmount),
			HoursRemaining: hours,
		})
	}

	report := &Report{
		GeneratedAt: now.UTC(),
		Username:    username,
		TotalActive: len(records),
	}
	for _, band := range reportBands {
		items := byLevel[band.level]
		if len(items) == 0 {
			continue
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].HoursRemaining < items[j].HoursRemaining
		})
		report.Sections = append(report.Sections, ReportSection{
			Level: band.level,
			Title: band.title,
			Items: items,
		})
	}
	return report
}

// WriteReport writes the report in the specified format
func WriteReport(w io.Writer, report *Report, format ReportFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case FormatText:
		return writeReportText(w, report)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeReportText outputs the report as human-readable text
func writeReportText(w io.Writer, report *Report) error {
	fmt.Fprintf(w, "Hackathon deadlines for %s (generated %s)\n",
		report.Username, report.GeneratedAt.Format("Jan 02, 2006 03:04 PM MST"))

	if report.TotalActive == 0 {
		fmt.Fprintln(w, "\nNo active hackathons found.")
		return nil
	}

	for _, section := range report.Sections {
		fmt.Fprintf(w, "\n%s %s:\n", urgency.Emoji(section.Level), section.Title)
		for _, item := range section.Items {
			fmt.Fprintf(w, "  • %s (%s left)\n", item.Name, item.Countdown)
			fmt.Fprintf(w, "    Deadline: %s | Prize: %s\n", item.Deadline, item.Prize)
			fmt.Fprintf(w, "    %s\n", item.URL)
		}
	}

	fmt.Fprintf(w, "\nTotal active: %d\n", report.TotalActive)
	return nil
}

// shortCountdown is a single-unit countdown for report lines.
func shortCountdown(hours float64) string {
	if hours < 1 {
		return fmt.Sprintf("%dm", int(hours*60))
	}
	if hours < 24 {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%dd %dh", int(hours/24), int(hours)%24)
}

// prizeLabel renders the prize pool compactly, "TBA" when unknown.
func prizeLabel(amount *float64) string {
	switch {
	case amount == nil:
		return "TBA"
	case *amount >= 1000:
		return fmt.Sprintf("$%.0fK", *amount/1000)
	default:
		return fmt.Sprintf("$%.0f", *amount)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
