package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"hackwatch/internal/hackathon"
	"hackwatch/internal/logger"
)

const (
	BaseURL = "https://devpost.com"
	// Devpost serves a stripped page to obvious bots, so present a browser.
	UserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	Timeout         = 15 * time.Second
	DefaultMaxPages = 3
)

// Scraper fetches a Devpost user's registered challenges.
type Scraper struct {
	client   *http.Client
	baseURL  string
	username string
}

// New creates a Scraper for the given Devpost username.
func New(username string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:  BaseURL,
		username: username,
	}
}

// FetchPage retrieves one page of the user's challenges listing.
// Pages are numbered from 1; the first page has no query parameter.
func (s *Scraper) FetchPage(page int) (string, error) {
	url := fmt.Sprintf("%s/%s/challenges", s.baseURL, s.username)
	if page > 1 {
		url = fmt.Sprintf("%s?page=%d", url, page)
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(body), nil
}

// Active fetches up to maxPages pages and returns the deduplicated
// hackathons that still have a future deadline, earliest first. A fetch
// or parse failure stops pagination but keeps whatever was collected,
// so a flaky later page degrades the result instead of discarding it.
func (s *Scraper) Active(maxPages int) []*hackathon.Record {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	var all []*hackathon.Record
	for page := 1; page <= maxPages; page++ {
		html, err := s.FetchPage(page)
		if err != nil {
			logger.Warn("stopping pagination", logger.Fields{"page": page, "error": err.Error()})
			break
		}
		logger.IncrCounter("pages.fetched")

		records, err := Extract(html)
		if err != nil {
			logger.Warn("stopping pagination", logger.Fields{"page": page, "error": err.Error()})
			break
		}
		if len(records) == 0 {
			break
		}

		logger.Debug("page scraped", logger.Fields{"page": page, "hackathons": len(records)})
		all = append(all, records...)
	}

	return hackathon.Active(all, time.Now())
}
