package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"hackwatch/internal/hackathon"
	"hackwatch/internal/logger"
)

// Challenge tiles are anchors back into devpost.com that carry a
// ref_content tracking parameter; plain navigation links carry neither.
const challengeLinkSelector = `a[href*="devpost.com"][href*="ref_content"]`

var (
	// "Mar 16, 2026 8:00 PM EDT to submit"
	submitDeadlineExpr = regexp.MustCompile(`([A-Z][a-z]{2}\s+\d{1,2},?\s+\d{4}\s+\d{1,2}:\d{2}\s*(?:AM|PM)\s*[A-Z]{2,4})\s+to submit`)
	// "Feb 2 – 20, 2026" (submissions close end of the last day)
	dateRangeExpr = regexp.MustCompile(`([A-Z][a-z]{2})\s+\d{1,2}\s*[–-]\s*(\d{1,2}),?\s*(\d{4})`)
	// Any bare timestamp, tried last because it also matches opening dates
	timestampExpr = regexp.MustCompile(`[A-Z][a-z]{2}\s+\d{1,2},?\s+\d{4}\s+\d{1,2}:\d{2}\s*(?:AM|PM)\s*[A-Z]{2,4}`)

	prizeExpr    = regexp.MustCompile(`([$€£₹])?\s*([0-9,]+(?:\.[0-9]{1,2})?)\s*(k|m|mil|million)?\s*([a-z]{3})?`)
	locationExpr = regexp.MustCompile(`(?:Featured\s+)?([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*(?:[A-Z][a-z]+|[A-Z]{2,})\s*(?:,\s*[A-Z][a-z]+)?)`)

	zoneSuffixExpr = regexp.MustCompile(`\s+[A-Z]{2,4}$`)
)

// Approximate conversion rates to USD for the currencies Devpost listings
// use, keyed by both symbol and ISO code.
var currencyRates = map[string]float64{
	"$": 1.0, "usd": 1.0,
	"€": 1.08, "eur": 1.08,
	"£": 1.25, "gbp": 1.25,
	"₹": 0.012, "inr": 0.012,
	"c$": 0.74, "cad": 0.74,
	"a$": 0.65, "aud": 0.65,
}

// Extract parses one challenges page and returns the hackathons found in
// document order, first occurrence of each URL winning. Tiles that fail
// any single extraction step are skipped, never fatal.
func Extract(html string) ([]*hackathon.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	records := make([]*hackathon.Record, 0)
	seen := make(map[string]bool)

	doc.Find(challengeLinkSelector).Each(func(i int, sel *goquery.Selection) {
		rec := parseChallenge(sel)
		if rec == nil || seen[rec.URL] {
			return
		}
		seen[rec.URL] = true
		records = append(records, rec)
	})

	return records, nil
}

// parseChallenge turns one candidate anchor into a record. Returns nil
// for navigation chrome and for tiles without a parsable deadline.
func parseChallenge(sel *goquery.Selection) *hackathon.Record {
	raw := sel.Text()
	text := normalizeSpace(raw)

	if utf8.RuneCountInString(text) < 20 {
		return nil
	}
	if strings.Contains(text, "Browse hackathons") || strings.Contains(text, "Host a hackathon") {
		return nil
	}

	href, _ := sel.Attr("href")
	url := href
	if i := strings.Index(url, "?"); i >= 0 {
		url = url[:i]
	}
	if strings.HasPrefix(url, "//") {
		url = "https:" + url
	} else if !strings.HasPrefix(url, "http") {
		url = BaseURL + url
	}

	name := strings.TrimSpace(sel.AttrOr("title", ""))
	if name == "" {
		if heading := sel.Find("h2, h5, h3").First(); heading.Length() > 0 {
			name = normalizeSpace(heading.Text())
		} else {
			name = strings.TrimSpace(strings.TrimPrefix(firstLine(raw), "Featured"))
		}
	}
	if utf8.RuneCountInString(name) < 3 {
		return nil
	}

	deadline, ok := extractDeadline(text)
	if !ok {
		logger.Warn("skipping tile without deadline", logger.Fields{"name": name})
		return nil
	}

	return &hackathon.Record{
		Name:        name,
		URL:         url,
		Deadline:    deadline,
		PrizeAmount: extractPrize(text),
		Location:    extractLocation(text),
		Tags:        []string{},
	}
}

// deadlineMatchers are tried in order; the first parsable hit wins.
var deadlineMatchers = []func(string) (time.Time, bool){
	matchSubmitDeadline,
	matchDateRange,
	matchTimestamp,
}

func extractDeadline(text string) (time.Time, bool) {
	for _, match := range deadlineMatchers {
		if t, ok := match(text); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func matchSubmitDeadline(text string) (time.Time, bool) {
	m := submitDeadlineExpr.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	return parseTimestamp(m[1])
}

// matchDateRange treats the range's last day at 11:59 PM as the deadline.
func matchDateRange(text string) (time.Time, bool) {
	m := dateRangeExpr.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	t, err := time.Parse("Jan 2, 2006 3:04 PM", fmt.Sprintf("%s %s, %s 11:59 PM", m[1], m[2], m[3]))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func matchTimestamp(text string) (time.Time, bool) {
	m := timestampExpr.FindString(text)
	if m == "" {
		return time.Time{}, false
	}
	return parseTimestamp(m)
}

var timestampLayouts = []string{
	"Jan 2, 2006 3:04 PM MST",
	"Jan 2 2006 3:04 PM MST",
	"Jan 2, 2006 3:04 PM",
	"Jan 2 2006 3:04 PM",
}

// parseTimestamp parses strings like "Mar 16, 2026 8:00 PM EDT". Zone
// abbreviations the time package cannot lex (PT, AOE) are dropped and the
// rest parsed as offset zero, which keeps comparisons consistent.
func parseTimestamp(s string) (time.Time, bool) {
	s = normalizeSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	if loc := zoneSuffixExpr.FindStringIndex(s); loc != nil {
		trimmed := s[:loc[0]]
		for _, layout := range timestampLayouts[2:] {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, true
			}
		}
	}

	return time.Time{}, false
}

// extractPrize scans for money mentions and returns the largest value in
// USD, or nil when nothing above the $100 noise floor is found. Bare
// numbers only count when the surrounding text mentions a prize, which
// keeps years and participant counts out.
func extractPrize(text string) *float64 {
	lower := strings.ToLower(text)
	mentionsPrize := strings.Contains(lower, "prize")

	best := 0.0
	for _, m := range prizeExpr.FindAllStringSubmatch(lower, -1) {
		prefix, amount, modifier, suffix := m[1], m[2], m[3], m[4]

		if prefix == "" && suffix == "" && !mentionsPrize {
			continue
		}

		key := prefix
		if key == "" {
			key = suffix
		}
		if key == "" {
			key = "$"
		}
		rate, ok := currencyRates[key]
		if !ok {
			continue
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(amount, ",", ""), 64)
		if err != nil {
			continue
		}
		switch modifier {
		case "k":
			value *= 1000
		case "m", "mil", "million":
			value *= 1000000
		}

		if usd := value * rate; usd > best {
			best = usd
		}
	}

	if best > 100 {
		return &best
	}
	return nil
}

// extractLocation finds a venue string, preferring the explicit Online
// marker Devpost uses for virtual hackathons.
func extractLocation(text string) string {
	if strings.Contains(text, "Online") {
		return "Online"
	}
	if m := locationExpr.FindStringSubmatch(text); m != nil {
		return normalizeSpace(m[1])
	}
	return "Unknown"
}

// normalizeSpace collapses all whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstLine returns the first non-empty line of s, trimmed.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
