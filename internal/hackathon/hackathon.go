// Package hackathon defines the record type for tracked hackathons and the
// pure helpers that dedup, filter, and order them after a scrape.
package hackathon

import (
	"sort"
	"time"
)

// Record holds the fields extracted for a single hackathon.
//
// Deadline is always set; tiles without a parsable deadline are dropped
// during extraction. PrizeAmount is nil when no prize could be determined,
// otherwise an approximate total in USD.
type Record struct {
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Deadline    time.Time `json:"deadline"`
	PrizeAmount *float64  `json:"prize_amount,omitempty"`
	Location    string    `json:"location"`
	Tags        []string  `json:"tags,omitempty"`
}

// Prize returns the prize amount in USD, or 0 when unknown.
func (r *Record) Prize() float64 {
	if r.PrizeAmount == nil {
		return 0
	}
	return *r.PrizeAmount
}

// Dedup returns the records with later duplicates of the same URL removed.
// The first occurrence wins and input order is preserved.
func Dedup(records []*Record) []*Record {
	seen := make(map[string]bool)
	unique := make([]*Record, 0, len(records))
	for _, rec := range records {
		if seen[rec.URL] {
			continue
		}
		seen[rec.URL] = true
		unique = append(unique, rec)
	}
	return unique
}

// FilterActive returns the records whose deadline is strictly after now.
func FilterActive(records []*Record, now time.Time) []*Record {
	active := make([]*Record, 0, len(records))
	for _, rec := range records {
		if rec.Deadline.After(now) {
			active = append(active, rec)
		}
	}
	return active
}

// SortByDeadline orders records in place by deadline, earliest first.
// Records with equal deadlines keep their relative order.
func SortByDeadline(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Deadline.Before(records[j].Deadline)
	})
}

// Active runs the standard post-scrape pipeline: dedup by URL, drop past
// deadlines, sort by deadline. The input slice is left untouched.
func Active(records []*Record, now time.Time) []*Record {
	active := FilterActive(Dedup(records), now)
	SortByDeadline(active)
	return active
}
