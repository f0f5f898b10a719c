// Package registry provides the authoritative list of feed sources.
// The list is an ordered value handed to registration, nothing here is mutable shared state.
package registry

import (
	_ "embed"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

//go:embed sources.yml
var defaultSources []byte

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Entry is a single source as written in YAML
type Entry struct {
	Slug        string `yaml:"slug" json:"slug" jsonschema:"required,description=Stable unique source key"`
	Name        string `yaml:"name" json:"name" jsonschema:"required,description=Display name"`
	URL         string `yaml:"url" json:"url" jsonschema:"description=Canonical site URL"`
	FeedURL     string `yaml:"feed_url" json:"feed_url,omitempty" jsonschema:"description=RSS/Atom feed URL, omit if the source has no feed"`
	AuthorType  string `yaml:"author_type" json:"author_type" jsonschema:"required,enum=journalist,enum=lawyer,enum=consultant,enum=engineer"`
	Author      string `yaml:"author" json:"author,omitempty" jsonschema:"description=Default author name for articles without one"`
	Description string `yaml:"description" json:"description,omitempty"`
	Active      *bool  `yaml:"active" json:"active,omitempty" jsonschema:"default=true,description=Fetch this source"`
}

// Default returns the embedded source list in registry order
func Default() ([]domain.Source, error) {
	return Parse(defaultSources)
}

// Parse decodes a YAML list of sources and validates it
func Parse(data []byte) ([]domain.Source, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse sources: %w", err)
	}
	return FromEntries(entries)
}

// FromEntries converts YAML entries to sources, preserving order
func FromEntries(entries []Entry) ([]domain.Source, error) {
	res := make([]domain.Source, 0, len(entries))
	for _, e := range entries {
		src := domain.Source{
			Slug:          strings.TrimSpace(e.Slug),
			Name:          strings.TrimSpace(e.Name),
			URL:           strings.TrimSpace(e.URL),
			FeedURL:       strings.TrimSpace(e.FeedURL),
			AuthorType:    domain.AuthorType(strings.TrimSpace(e.AuthorType)),
			DefaultAuthor: strings.TrimSpace(e.Author),
			Description:   strings.TrimSpace(e.Description),
			Active:        e.Active == nil || *e.Active,
		}
		res = append(res, src)
	}
	if err := Validate(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Validate checks slugs are well formed and unique, names present and author types known
func Validate(sources []domain.Source) error {
	seen := make(map[string]bool, len(sources))
	for i, s := range sources {
		if !slugRe.MatchString(s.Slug) {
			return fmt.Errorf("source #%d: invalid slug %q", i, s.Slug)
		}
		if seen[s.Slug] {
			return fmt.Errorf("source #%d: duplicate slug %q", i, s.Slug)
		}
		seen[s.Slug] = true
		if s.Name == "" {
			return fmt.Errorf("source %s: name is required", s.Slug)
		}
		if !s.AuthorType.Valid() {
			return fmt.Errorf("source %s: unknown author type %q", s.Slug, s.AuthorType)
		}
		if s.FeedURL != "" {
			u, err := url.Parse(s.FeedURL)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return fmt.Errorf("source %s: invalid feed url %q", s.Slug, s.FeedURL)
			}
		}
	}
	return nil
}
