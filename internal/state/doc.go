// Package state tracks which hackathons were recently notified so repeat
// alerts stay suppressed until their urgency interval passes.
//
// State is a single JSON file mapping hackathon URLs to the timestamp and
// alert level of the last notification. The file is rewritten after every
// recorded notification, and entries are aged out after a retention window
// so one-off hackathons do not accumulate forever.
package state
