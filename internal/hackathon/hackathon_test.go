package hackathon

import (
	"testing"
	"time"
)

func rec(name, url string, deadline time.Time) *Record {
	return &Record{Name: name, URL: url, Deadline: deadline}
}

func TestDedup(t *testing.T) {
	now := time.Now()
	records := []*Record{
		rec("first", "https://a.devpost.com/", now),
		rec("second", "https://b.devpost.com/", now),
		rec("first again", "https://a.devpost.com/", now),
	}

	unique := Dedup(records)

	if len(unique) != 2 {
		t.Fatalf("expected 2 unique records, got %d", len(unique))
	}
	if unique[0].Name != "first" {
		t.Errorf("expected first occurrence to win, got %q", unique[0].Name)
	}
	if unique[1].URL != "https://b.devpost.com/" {
		t.Errorf("expected input order preserved, got %q", unique[1].URL)
	}

	// Running dedup again should change nothing
	again := Dedup(unique)
	if len(again) != len(unique) {
		t.Errorf("dedup is not idempotent: %d vs %d", len(again), len(unique))
	}
}

func TestFilterActive(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	records := []*Record{
		rec("past", "https://past.devpost.com/", now.Add(-time.Hour)),
		rec("exact", "https://exact.devpost.com/", now),
		rec("future", "https://future.devpost.com/", now.Add(time.Hour)),
	}

	active := FilterActive(records, now)

	if len(active) != 1 {
		t.Fatalf("expected 1 active record, got %d", len(active))
	}
	if active[0].Name != "future" {
		t.Errorf("expected only the future record, got %q", active[0].Name)
	}
}

func TestSortByDeadline(t *testing.T) {
	now := time.Now()
	records := []*Record{
		rec("late", "https://late.devpost.com/", now.Add(72*time.Hour)),
		rec("soon", "https://soon.devpost.com/", now.Add(2*time.Hour)),
		rec("mid", "https://mid.devpost.com/", now.Add(24*time.Hour)),
	}

	SortByDeadline(records)

	want := []string{"soon", "mid", "late"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, records[i].Name)
		}
	}
}

func TestActive(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	records := []*Record{
		rec("late", "https://late.devpost.com/", now.Add(100*time.Hour)),
		rec("expired", "https://expired.devpost.com/", now.Add(-time.Hour)),
		rec("soon", "https://soon.devpost.com/", now.Add(5*time.Hour)),
		rec("late dup", "https://late.devpost.com/", now.Add(100*time.Hour)),
	}

	active := Active(records, now)

	if len(active) != 2 {
		t.Fatalf("expected 2 records, got %d", len(active))
	}
	if active[0].Name != "soon" || active[1].Name != "late" {
		t.Errorf("unexpected order: %q, %q", active[0].Name, active[1].Name)
	}

	// Input slice order must be untouched
	if records[0].Name != "late" || records[3].Name != "late dup" {
		t.Error("Active modified its input")
	}
}

func TestPrize(t *testing.T) {
	r := &Record{}
	if got := r.Prize(); got != 0 {
		t.Errorf("expected 0 for unknown prize, got %v", got)
	}

	amount := 50000.0
	r.PrizeAmount = &amount
	if got := r.Prize(); got != 50000 {
		t.Errorf("expected 50000, got %v", got)
	}
}
