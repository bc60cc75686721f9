// Package scraper provides HTTP fetching and HTML parsing for Devpost hackathons.
//
// The scraper walks a user's public challenges pages on devpost.com and turns
// each challenge tile into a record with a deadline, prize estimate, and
// location. Deadlines come from a cascade of text patterns (explicit "to
// submit" timestamps, date ranges, bare timestamps); tiles without a parsable
// deadline are dropped. A second, generic scraper extracts best-effort
// metadata from arbitrary hackathon pages for manual tracking.
package scraper
