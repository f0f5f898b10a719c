package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/repository"
)

const (
	// DefaultPageSize is used when a listing doesn't ask for a limit
	DefaultPageSize = 20
	// MaxPageSize caps the requested limit
	MaxPageSize = 100
)

// ErrInvalidFilter is returned for filters with unknown topic or author type
var ErrInvalidFilter = errors.New("invalid filter")

// Catalog provides read access to stored articles and sources, plus source activation
type Catalog struct {
	sourceRepo  *repository.SourceRepository
	articleRepo *repository.ArticleRepository
}

// Stats is a snapshot of the store
type Stats struct {
	Sources       int `json:"sources"`
	ActiveSources int `json:"active_sources"`
	FeedSources   int `json:"feed_sources"`
	Articles      int `json:"articles"`
}

// NewCatalog creates a new catalog service
func NewCatalog(sourceRepo *repository.SourceRepository, articleRepo *repository.ArticleRepository) *Catalog {
	return &Catalog{sourceRepo: sourceRepo, articleRepo: articleRepo}
}

// ListArticles returns a page of articles, most recent first.
// Limit defaults to DefaultPageSize and is capped at MaxPageSize, negative offset is treated as 0.
func (c *Catalog) ListArticles(ctx context.Context, filter domain.ArticleFilter) (domain.ArticlePage, error) {
	if filter.Topic != "" && !filter.Topic.Valid() {
		return domain.ArticlePage{}, fmt.Errorf("%w: unknown topic %q", ErrInvalidFilter, filter.Topic)
	}
	if filter.AuthorType != "" && !filter.AuthorType.Valid() {
		return domain.ArticlePage{}, fmt.Errorf("%w: unknown author type %q", ErrInvalidFilter, filter.AuthorType)
	}

	switch {
	case filter.Limit <= 0:
		filter.Limit = DefaultPageSize
	case filter.Limit > MaxPageSize:
		filter.Limit = MaxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	items, total, err := c.articleRepo.ListArticles(ctx, filter)
	if err != nil {
		return domain.ArticlePage{}, fmt.Errorf("list articles: %w", err)
	}
	return domain.ArticlePage{Items: items, Total: total}, nil
}

// ListSources returns sources ordered by name with their article counts, active ones unless asked otherwise
func (c *Catalog) ListSources(ctx context.Context, filter domain.SourceFilter) ([]domain.SourceWithCount, error) {
	if filter.AuthorType != "" && !filter.AuthorType.Valid() {
		return nil, fmt.Errorf("%w: unknown author type %q", ErrInvalidFilter, filter.AuthorType)
	}
	return c.sourceRepo.ListSources(ctx, filter)
}

// SetSourceActive enables or disables a source, repository.ErrNotFound for unknown slug
func (c *Catalog) SetSourceActive(ctx context.Context, slug string, active bool) error {
	return c.sourceRepo.SetActive(ctx, slug, active)
}

// Stats returns source and article counts
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	sources, err := c.sourceRepo.GetSources(ctx, false)
	if err != nil {
		return Stats{}, fmt.Errorf("get sources: %w", err)
	}
	res := Stats{Sources: len(sources)}
	for _, s := range sources {
		if s.Active {
			res.ActiveSources++
		}
		if s.HasFeed() {
			res.FeedSources++
		}
	}

	if res.Articles, err = c.articleRepo.CountArticles(ctx); err != nil {
		return Stats{}, fmt.Errorf("count articles: %w", err)
	}
	return res, nil
}
