package domain

import (
	"fmt"
	"time"
)

// Topic is a fixed-vocabulary label assigned to an article
type Topic string

// topics, in classification priority order
const (
	TopicSpaceLaw    Topic = "space_law"
	TopicInvestment  Topic = "investment"
	TopicPolicy      Topic = "policy"
	TopicTechnology  Topic = "technology"
	TopicBusiness    Topic = "business"
	TopicExploration Topic = "exploration"
)

// Topics lists all known topics in classification order
var Topics = []Topic{TopicSpaceLaw, TopicInvestment, TopicPolicy, TopicTechnology, TopicBusiness, TopicExploration}

// Valid reports whether the topic is one of the known values
func (t Topic) Valid() bool {
	for _, v := range Topics {
		if t == v {
			return true
		}
	}
	return false
}

// ParseTopic converts a string to Topic, rejecting unknown values
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown topic %q", s)
	}
	return t, nil
}

// Article represents a fetched content item, identified by its URL
type Article struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"source_id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	AuthorName  string    `json:"author_name"`
	Topic       Topic     `json:"topic"`
	PublishedAt time.Time `json:"published_at"`
	FetchedAt   time.Time `json:"fetched_at"`
	CreatedAt   time.Time `json:"created_at"`

	// joined from the owning source, populated by read queries
	SourceName string     `json:"source_name,omitempty"`
	SourceSlug string     `json:"source_slug,omitempty"`
	AuthorType AuthorType `json:"author_type,omitempty"`
}

// ArticleFilter represents filtering and paging criteria for articles
type ArticleFilter struct {
	Topic      Topic
	AuthorType AuthorType
	SourceID   int64
	Limit      int
	Offset     int
}

// ArticlePage is a page of articles with the total count matching the filter
type ArticlePage struct {
	Items []Article `json:"items"`
	Total int       `json:"total"`
}
