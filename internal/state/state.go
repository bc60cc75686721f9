package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"hackwatch/internal/logger"
	"hackwatch/internal/urgency"
)

// DefaultPath is where notification state lives unless configured otherwise.
const DefaultPath = "data/state.json"

const timeLayout = time.RFC3339

// Entry records the most recent notification sent for one hackathon URL.
type Entry struct {
	LastNotified string `json:"last_notified"`
	Level        string `json:"level"`
	Name         string `json:"name"`
}

// Store persists notification history as a URL-keyed JSON object.
// A missing or corrupt file yields an empty store rather than an error.
type Store struct {
	path    string
	entries map[string]Entry
}

// New opens the store at path, loading any existing entries.
func New(path string) *Store {
	s := &Store{
		path:    path,
		entries: make(map[string]Entry),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading notification state", logger.Fields{"path": s.path, "error": err.Error()})
		}
		return
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		logger.Warn("notification state is corrupt, starting fresh", logger.Fields{"path": s.path, "error": err.Error()})
		s.entries = make(map[string]Entry)
	}
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding notification state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing notification state: %w", err)
	}
	return nil
}

// ShouldNotify reports whether rec is due for another alert. Unknown
// URLs and entries with unreadable timestamps are always due. Known
// entries are due once the record's current notification interval has
// elapsed, so a hackathon that escalated to a tighter band re-alerts on
// the tighter schedule.
func (s *Store) ShouldNotify(rec *urgency.Scored) bool {
	entry, ok := s.entries[rec.URL]
	if !ok {
		return true
	}

	last, err := time.Parse(timeLayout, entry.LastNotified)
	if err != nil {
		return true
	}

	return time.Since(last) >= rec.NotifyInterval
}

// RecordNotification marks rec as notified now and persists immediately.
func (s *Store) RecordNotification(rec *urgency.Scored) error {
	s.entries[rec.URL] = Entry{
		LastNotified: time.Now().UTC().Format(timeLayout),
		Level:        string(rec.Level),
		Name:         rec.Name,
	}
	return s.save()
}

// FilterForNotification returns the records that are due for an alert,
// preserving input order.
func (s *Store) FilterForNotification(records []*urgency.Scored) []*urgency.Scored {
	due := make([]*urgency.Scored, 0, len(records))
	for _, rec := range records {
		if s.ShouldNotify(rec) {
			due = append(due, rec)
		} else {
			logger.Debug("suppressing recent notification", logger.Fields{"hackathon": rec.Name})
		}
	}
	return due
}

// CleanupOldEntries drops entries older than retentionDays, along with
// any whose timestamp no longer parses, and reports how many were
// removed. The file is rewritten only when something was dropped.
func (s *Store) CleanupOldEntries(retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	removed := 0
	for url, entry := range s.entries {
		last, err := time.Parse(timeLayout, entry.LastNotified)
		if err != nil || last.Before(cutoff) {
			delete(s.entries, url)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}
	return removed, s.save()
}

// Len returns the number of tracked URLs.
func (s *Store) Len() int {
	return len(s.entries)
}

// Summary returns the tracked URL count and the URLs themselves, sorted
// for stable output.
func (s *Store) Summary() (int, []string) {
	urls := make([]string, 0, len(s.entries))
	for url := range s.entries {
		urls = append(urls, url)
	}
	sort.Strings(urls)
	return len(s.entries), urls
}
