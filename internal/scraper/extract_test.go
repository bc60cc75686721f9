package scraper

import (
	"math"
	"testing"
	"time"
)

func TestExtractDeadline(t *testing.T) {
	tests := []struct {
		name string
		text string
		want time.Time
		ok   bool
	}{
		{
			name: "submit deadline with known zone",
			text: "4 days left Mar 16, 2026 8:00 PM EDT to submit",
			want: time.Date(2026, time.March, 16, 20, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "submit deadline with two letter zone",
			text: "Oct 4, 2026 5:00 PM PT to submit",
			want: time.Date(2026, time.October, 4, 17, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "date range takes the last day",
			text: "Runs Feb 2 – 20, 2026 with weekly checkins",
			want: time.Date(2026, time.February, 20, 23, 59, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "date range with plain hyphen",
			text: "Jun 1-12, 2026",
			want: time.Date(2026, time.June, 12, 23, 59, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "bare timestamp fallback",
			text: "Submissions close Jan 5, 2026 11:45 AM PST",
			want: time.Date(2026, time.January, 5, 11, 45, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "submit phrasing wins over a later range",
			text: "Mar 1, 2026 9:00 AM UTC to submit Feb 2 – 20, 2027",
			want: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "no date at all",
			text: "Winners announced. Judging complete.",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractDeadline(tt.text)
			if ok != tt.ok {
				t.Fatalf("extractDeadline(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("extractDeadline(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPrize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64 // 0 means no prize expected
	}{
		{"dollar amount", "Win $50,000 in prizes", 50000},
		{"k suffix with code", "a 50k usd prize pool", 50000},
		{"euro converts", "€20,000 in prizes", 21600},
		{"pound converts", "£10,000 grand prize", 12500},
		{"rupee converts", "₹500,000 in prizes", 6000},
		{"million modifier", "$2 million in prizes", 2000000},
		{"bare number with prize context", "prize pool of 5,000", 5000},
		{"bare number without context", "over 5,000 participants", 0},
		{"million needs a currency marker", "1 million prize fund", 0},
		{"at the noise floor", "$100 prize", 0},
		{"just above the floor", "$101 prize", 101},
		{"largest mention wins", "$500 first prize and $20,000 grand prize", 20000},
		{"year alone is not a prize", "opened in 2026", 0},
		{"unknown currency code ignored", "5000 xyz tokens", 0},
		{"prefix wins over trailing word", "$5,000 for the winning hack", 5000},
		{"nothing numeric", "free swag for everyone", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPrize(tt.text)
			if tt.want == 0 {
				if got != nil {
					t.Errorf("extractPrize(%q) = %v, want nil", tt.text, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("extractPrize(%q) = nil, want %v", tt.text, tt.want)
			}
			if math.Abs(*got-tt.want) > 0.01 {
				t.Errorf("extractPrize(%q) = %v, want %v", tt.text, *got, tt.want)
			}
		})
	}
}

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"online wins outright", "AI Hackathon Online with $5,000 in prizes", "Online"},
		{"city and country", "submissions from Berlin, Germany are welcome", "Berlin, Germany"},
		{"city and state code", "hosted in San Francisco, CA this year", "San Francisco, CA"},
		{"two part city name", "join us in New York, NY", "New York, NY"},
		{"third part must be titlecase", "meet us in Austin, Texas, USA before kickoff", "Austin, Texas"},
		{"no location found", "Retro Game Jam submissions close soon", "Unknown"},
		{"featured prefix stays out of the match", "Featured Lisbon, Portugal hackathon", "Lisbon, Portugal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractLocation(tt.text); got != tt.want {
				t.Errorf("extractLocation(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"Mar 16, 2026 8:00 PM EDT", time.Date(2026, time.March, 16, 20, 0, 0, 0, time.UTC), true},
		{"Mar 16 2026 8:00 PM EDT", time.Date(2026, time.March, 16, 20, 0, 0, 0, time.UTC), true},
		{"Dec 1, 2026 9:30 AM AOE", time.Date(2026, time.December, 1, 9, 30, 0, 0, time.UTC), true},
		{"Oct 4, 2026 5:00 PM PT", time.Date(2026, time.October, 4, 17, 0, 0, 0, time.UTC), true},
		{"not a timestamp", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := parseTimestamp(tt.in)
		if ok != tt.ok {
			t.Errorf("parseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a  b\n\tc  ", "a b c"},
		{"single", "single"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeSpace(tt.in); got != tt.want {
			t.Errorf("normalizeSpace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\n\n  Featured Retro Jam  \nmore text", "Featured Retro Jam"},
		{"one line", "one line"},
		{"\n \n ", ""},
	}

	for _, tt := range tests {
		if got := firstLine(tt.in); got != tt.want {
			t.Errorf("firstLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
