package domain

import "time"

// ParsedFeed represents a feed as returned by the parser
type ParsedFeed struct {
	Title       string
	Description string
	Link        string
	Items       []ParsedItem
}

// ParsedItem represents a single feed entry before normalization
type ParsedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string // snippet/summary field
	Content     string // full encoded content, if present
	Author      string
	Published   time.Time // zero if the feed has no date
}

// FetchResult summarizes a single fetch pass
type FetchResult struct {
	RunID     string        `json:"run_id"`
	Saved     int           `json:"saved"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Skipped   int           `json:"skipped"`
	Started   time.Time     `json:"started"`
	Duration  time.Duration `json:"duration"`
}
