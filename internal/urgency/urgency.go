package urgency

import (
	"math"
	"sort"
	"time"

	"hackwatch/internal/hackathon"
)

// Level classifies how close a submission deadline is.
type Level string

const (
	Critical Level = "CRITICAL"
	High     Level = "HIGH"
	Medium   Level = "MEDIUM"
	Low      Level = "LOW"
	Ignore   Level = "IGNORE"
)

// Band boundaries, in hours remaining. Each level covers up to and
// including its boundary.
const (
	criticalHours = 3
	highHours     = 12
	mediumHours   = 48
	lowHours      = 168
)

// DefaultTopN is how many hackathons a run alerts on at most.
const DefaultTopN = 3

// Scored is a hackathon record annotated with urgency metadata.
type Scored struct {
	hackathon.Record
	HoursRemaining float64
	Level          Level
	PriorityScore  float64
	NotifyInterval time.Duration
}

// HoursRemaining returns the hours from now until deadline, clamped at
// zero for deadlines already in the past.
func HoursRemaining(deadline, now time.Time) float64 {
	hours := deadline.Sub(now).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// LevelFor maps hours remaining onto an alert level. Anything beyond
// seven days is IGNORE.
func LevelFor(hours float64) Level {
	switch {
	case hours <= criticalHours:
		return Critical
	case hours <= highHours:
		return High
	case hours <= mediumHours:
		return Medium
	case hours <= lowHours:
		return Low
	default:
		return Ignore
	}
}

// Interval returns the minimum gap before a hackathon at this level is
// alerted on again.
func Interval(level Level) time.Duration {
	switch level {
	case Critical:
		return 1 * time.Hour
	case High:
		return 3 * time.Hour
	case Medium:
		return 12 * time.Hour
	case Low:
		return 24 * time.Hour
	default:
		return 168 * time.Hour
	}
}

// Emoji returns the marker shown for a level in messages and reports.
func Emoji(level Level) string {
	switch level {
	case Critical:
		return "🔴"
	case High:
		return "🟠"
	case Medium:
		return "🟡"
	case Low:
		return "🟢"
	default:
		return "⚪"
	}
}

// PriorityScore ranks a hackathon for notification ordering. Deadline
// proximity dominates; prize size contributes up to 20 points, capped at
// $10k; tag relevance contributes up to 30 points.
func PriorityScore(hours, prizeUSD, tagScore float64) float64 {
	urgencyPart := 50 / math.Max(hours, 1)
	prizePart := 20 * math.Min(prizeUSD/10000, 1)
	tagPart := 30 * tagScore
	return urgencyPart + prizePart + tagPart
}

// Engine scores hackathons and selects the ones worth alerting on.
type Engine struct {
	topN int
}

// NewEngine creates an engine that returns at most topN results per run.
// Values below 1 fall back to DefaultTopN.
func NewEngine(topN int) *Engine {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Engine{topN: topN}
}

// Process scores every record, drops the IGNORE band entirely, and
// returns at most topN results ordered by priority, highest first.
// Records with equal scores keep their input order.
func (e *Engine) Process(records []*hackathon.Record, now time.Time) []*Scored {
	scored := make([]*Scored, 0, len(records))
	for _, r := range records {
		hours := HoursRemaining(r.Deadline, now)
		level := LevelFor(hours)
		if level == Ignore {
			continue
		}

		scored = append(scored, &Scored{
			Record:         *r,
			HoursRemaining: hours,
			Level:          level,
			// No tag matching yet, so the tag component is always zero.
			PriorityScore:  PriorityScore(hours, r.Prize(), 0),
			NotifyInterval: Interval(level),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].PriorityScore > scored[j].PriorityScore
	})

	if len(scored) > e.topN {
		scored = scored[:e.topN]
	}
	return scored
}
