package scraper

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"hackwatch/internal/hackathon"
	"hackwatch/internal/logger"
)

// defaultDeadlineDays is assumed when a page never states its deadline.
const defaultDeadlineDays = 30

var genericDeadlineExprs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)deadline:\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)ends on\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)submission deadline:\s*([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
}

var genericDateLayouts = []string{
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// Generic scrapes minimal metadata from hackathon pages outside Devpost,
// used to seed manually tracked entries.
type Generic struct {
	client *http.Client
}

// NewGeneric creates a scraper for arbitrary hackathon pages.
func NewGeneric() *Generic {
	return &Generic{
		client: &http.Client{
			Timeout: Timeout,
		},
	}
}

// Scrape fetches url and extracts a best-effort record. The name comes
// from og:title or the document title; the deadline falls back to 30
// days out when the page does not state one.
func (g *Generic) Scrape(url string) (*hackathon.Record, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	name := pageTitle(doc)
	if name == "" {
		return nil, fmt.Errorf("no title found at %s", url)
	}

	deadline, ok := extractGenericDeadline(doc.Text())
	if !ok {
		deadline = time.Now().AddDate(0, 0, defaultDeadlineDays)
		logger.Warn("no deadline on page, assuming 30 days out", logger.Fields{"url": url})
	}

	return &hackathon.Record{
		Name:     name,
		URL:      url,
		Deadline: deadline,
		Location: "Online",
		Tags:     []string{"External"},
	}, nil
}

// pageTitle prefers the og:title meta tag over the document title.
func pageTitle(doc *goquery.Document) string {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if og = strings.TrimSpace(og); og != "" {
			return og
		}
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractGenericDeadline tries each deadline phrasing in turn; a match
// that fails to parse falls through to the next pattern.
func extractGenericDeadline(text string) (time.Time, bool) {
	text = normalizeSpace(text)
	for _, expr := range genericDeadlineExprs {
		m := expr.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		for _, layout := range genericDateLayouts {
			if t, err := time.Parse(layout, m[1]); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
