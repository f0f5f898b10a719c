package domain

import (
	"fmt"
	"time"
)

// AuthorType is a coarse role classification of a source's typical writers
type AuthorType string

const (
	AuthorJournalist AuthorType = "journalist"
	AuthorLawyer     AuthorType = "lawyer"
	AuthorConsultant AuthorType = "consultant"
	AuthorEngineer   AuthorType = "engineer"
)

// AuthorTypes lists all known author types
var AuthorTypes = []AuthorType{AuthorJournalist, AuthorLawyer, AuthorConsultant, AuthorEngineer}

// Valid reports whether the author type is one of the known values
func (a AuthorType) Valid() bool {
	for _, v := range AuthorTypes {
		if a == v {
			return true
		}
	}
	return false
}

// ParseAuthorType converts a string to AuthorType, rejecting unknown values
func ParseAuthorType(s string) (AuthorType, error) {
	a := AuthorType(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown author type %q", s)
	}
	return a, nil
}

// Source represents an external feed provider
type Source struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	FeedURL       string     `json:"feed_url,omitempty"` // empty if the source has no feed
	AuthorType    AuthorType `json:"author_type"`
	DefaultAuthor string     `json:"default_author,omitempty"`
	Description   string     `json:"description,omitempty"`
	Active        bool       `json:"active"`
	Position      int        `json:"position"` // index in the registry, fetch order
	LastFetched   *time.Time `json:"last_fetched,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// HasFeed reports whether the source exposes a machine-readable feed
func (s Source) HasFeed() bool {
	return s.FeedURL != ""
}

// AuthorName returns the author to attribute articles to when the feed has none
func (s Source) AuthorName() string {
	if s.DefaultAuthor != "" {
		return s.DefaultAuthor
	}
	return s.Name
}

// SourceWithCount is a source annotated with the number of stored articles
type SourceWithCount struct {
	Source
	ArticleCount int `json:"article_count"`
}

// SourceFilter represents filtering criteria for sources
type SourceFilter struct {
	AuthorType AuthorType
	Active     *bool // nil means active only
}
