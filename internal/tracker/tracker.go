// Package tracker manages the manually added hackathons kept outside the
// profile scrape, stored as a flat JSON array.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hackwatch/internal/hackathon"
	"hackwatch/internal/logger"
)

// DefaultPath is where manually tracked hackathons live unless configured.
const DefaultPath = "data/external.json"

// List is the on-disk collection of manually tracked hackathons.
type List struct {
	path string
}

// New creates a List backed by the file at path.
func New(path string) *List {
	return &List{path: path}
}

// Load returns the tracked hackathons. A missing file yields an empty
// list; a corrupt file is logged and treated as empty.
func (l *List) Load() []*hackathon.Record {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("reading tracked hackathons", logger.Fields{"path": l.path, "error": err.Error()})
		}
		return nil
	}

	var records []*hackathon.Record
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("tracked hackathons file is corrupt, starting fresh", logger.Fields{"path": l.path, "error": err.Error()})
		return nil
	}
	return records
}

// Upsert adds rec, or replaces an existing entry with the same URL.
// Reports whether an existing entry was replaced.
func (l *List) Upsert(rec *hackathon.Record) (bool, error) {
	records := l.Load()

	updated := false
	for i, existing := range records {
		if existing.URL == rec.URL {
			records[i] = rec
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, rec)
	}

	if err := l.save(records); err != nil {
		return updated, err
	}
	return updated, nil
}

func (l *List) save(records []*hackathon.Record) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tracked hackathons: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("writing tracked hackathons: %w", err)
	}
	return nil
}
