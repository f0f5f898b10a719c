package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spacenexus/nexusfeed/pkg/content"
	"github.com/spacenexus/nexusfeed/pkg/domain"
)

//go:generate moq -out mocks/source_store.go -pkg mocks -skip-ensure -fmt goimports . SourceStore
//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser

// DefaultMaxItems is the number of feed entries taken from each source per run
const DefaultMaxItems = 20

// ErrRunInProgress is returned when a fetch pass is requested while another one is running
var ErrRunInProgress = errors.New("fetch run in progress")

// SourceStore persists sources and their fetch bookkeeping
type SourceStore interface {
	UpsertSource(ctx context.Context, src *domain.Source) error
	GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	GetSourceBySlug(ctx context.Context, slug string) (*domain.Source, error)
	UpdateLastFetched(ctx context.Context, sourceID int64, fetchedAt time.Time) error
}

// ArticleStore persists articles keyed by URL
type ArticleStore interface {
	UpsertArticle(ctx context.Context, article *domain.Article) error
}

// Parser retrieves and parses a feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedFeed, error)
}

// Normalizer turns raw feed content into a plain-text excerpt
type Normalizer interface {
	Excerpt(raw string) string
}

// Classifier assigns a topic to an article
type Classifier interface {
	Classify(title, text string) domain.Topic
}

// Aggregator runs source registration and fetch passes.
// Every source is processed in isolation: a failing feed is logged and counted
// and never stops the rest of the run. Within a feed, a failing item is logged
// with its URL and the remaining items are still stored.
type Aggregator struct {
	sources    SourceStore
	articles   ArticleStore
	parser     Parser
	normalizer Normalizer
	classifier Classifier

	maxItems   int
	maxWorkers int
	now        func() time.Time

	running atomic.Bool
	lastMu  sync.Mutex
	last    *domain.FetchResult
}

// Config holds dependencies and limits for Aggregator
type Config struct {
	Sources    SourceStore
	Articles   ArticleStore
	Parser     Parser
	Normalizer Normalizer
	Classifier Classifier
	MaxItems   int // entries per source per run, 20 if not set
	MaxWorkers int // sources fetched in parallel, 1 (sequential) if not set
}

// New makes an Aggregator. Store, parser and classifier dependencies are required,
// the normalizer defaults to a 300-character content.Normalizer.
func New(cfg Config) *Aggregator {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultMaxItems
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 1
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = content.NewNormalizer(content.DefaultMaxLength)
	}
	return &Aggregator{
		sources:    cfg.Sources,
		articles:   cfg.Articles,
		parser:     cfg.Parser,
		normalizer: cfg.Normalizer,
		classifier: cfg.Classifier,
		maxItems:   cfg.MaxItems,
		maxWorkers: cfg.MaxWorkers,
		now:        time.Now,
	}
}

// RegisterSources upserts sources by slug and returns how many were stored.
// The slice order becomes the fetch order. A source failing to store is logged and skipped,
// the only returned error is context cancellation.
func (a *Aggregator) RegisterSources(ctx context.Context, sources []domain.Source) (int, error) {
	registered := 0
	for i := range sources {
		if err := ctx.Err(); err != nil {
			return registered, fmt.Errorf("register sources: %w", err)
		}
		src := sources[i]
		src.Position = i
		if err := a.sources.UpsertSource(ctx, &src); err != nil {
			lgr.Printf("[WARN] failed to register source %s: %v", src.Name, err)
			continue
		}
		registered++
	}
	lgr.Printf("[INFO] registered %d of %d sources", registered, len(sources))
	return registered, nil
}

// FetchAll runs one fetch pass over all active sources.
// Only a failure to load the sources is returned as error, per-source problems end up in the result.
// Returns ErrRunInProgress if another pass is still running.
func (a *Aggregator) FetchAll(ctx context.Context) (domain.FetchResult, error) {
	if !a.running.CompareAndSwap(false, true) {
		return domain.FetchResult{}, ErrRunInProgress
	}
	defer a.running.Store(false)

	res := domain.FetchResult{RunID: uuid.NewString(), Started: a.now()}

	sources, err := a.sources.GetSources(ctx, true)
	if err != nil {
		return res, fmt.Errorf("get active sources: %w", err)
	}
	lgr.Printf("[DEBUG] run %s: fetching %d active sources with %d workers", res.RunID, len(sources), a.maxWorkers)

	var mu sync.Mutex
	collect := func(o outcome) {
		mu.Lock()
		defer mu.Unlock()
		addOutcome(&res, o)
	}

	if a.maxWorkers == 1 {
		for _, src := range sources {
			collect(a.fetchSource(ctx, src))
		}
	} else {
		g := new(errgroup.Group)
		g.SetLimit(a.maxWorkers)
		for _, src := range sources {
			g.Go(func() error {
				collect(a.fetchSource(ctx, src))
				return nil
			})
		}
		_ = g.Wait() // workers never return errors
	}

	res.Duration = a.now().Sub(res.Started)
	lgr.Printf("[INFO] run %s complete: saved %d articles, %d sources succeeded, %d failed, %d skipped in %v",
		res.RunID, res.Saved, res.Succeeded, res.Failed, res.Skipped, res.Duration)

	a.lastMu.Lock()
	a.last = &res
	a.lastMu.Unlock()
	return res, nil
}

// Running reports whether a fetch pass is in progress
func (a *Aggregator) Running() bool {
	return a.running.Load()
}

// LastResult returns the result of the last completed fetch pass, false if none completed yet
func (a *Aggregator) LastResult() (domain.FetchResult, bool) {
	a.lastMu.Lock()
	defer a.lastMu.Unlock()
	if a.last == nil {
		return domain.FetchResult{}, false
	}
	return *a.last, true
}

// FetchSource runs a fetch pass for a single source regardless of its active flag
func (a *Aggregator) FetchSource(ctx context.Context, slug string) (domain.FetchResult, error) {
	res := domain.FetchResult{RunID: uuid.NewString(), Started: a.now()}

	src, err := a.sources.GetSourceBySlug(ctx, slug)
	if err != nil {
		return res, fmt.Errorf("get source %s: %w", slug, err)
	}
	addOutcome(&res, a.fetchSource(ctx, *src))
	res.Duration = a.now().Sub(res.Started)
	lgr.Printf("[INFO] run %s for %s complete: saved %d articles, failed %d, skipped %d",
		res.RunID, src.Slug, res.Saved, res.Failed, res.Skipped)
	return res, nil
}

type outcomeStatus int

const (
	statusSucceeded outcomeStatus = iota
	statusFailed
	statusSkipped
)

// outcome is the result of fetching one source
type outcome struct {
	status outcomeStatus
	saved  int
}

// addOutcome accumulates a source outcome into the run result
func addOutcome(res *domain.FetchResult, o outcome) {
	switch o.status {
	case statusSucceeded:
		res.Succeeded++
		res.Saved += o.saved
	case statusFailed:
		res.Failed++
	case statusSkipped:
		res.Skipped++
	}
}

// fetchSource fetches and stores one source. It never returns an error, failures are logged.
func (a *Aggregator) fetchSource(ctx context.Context, src domain.Source) outcome {
	if !src.HasFeed() {
		lgr.Printf("[DEBUG] source %s has no feed, skipped", src.Name)
		return outcome{status: statusSkipped}
	}

	parsed, err := a.parser.Parse(ctx, src.FeedURL)
	if err != nil {
		lgr.Printf("[WARN] failed to fetch %s (%s): %v", src.Name, src.FeedURL, err)
		return outcome{status: statusFailed}
	}

	fetchedAt := a.now()
	items := parsed.Items
	if len(items) > a.maxItems {
		items = items[:a.maxItems]
	}

	saved := 0
	for _, item := range items {
		article, ok := a.buildArticle(src, item, fetchedAt)
		if !ok {
			continue
		}
		if err := a.articles.UpsertArticle(ctx, article); err != nil {
			lgr.Printf("[WARN] failed to save article %s from %s: %v", article.URL, src.Name, err)
			continue
		}
		saved++
	}

	if err := a.sources.UpdateLastFetched(ctx, src.ID, fetchedAt); err != nil {
		lgr.Printf("[WARN] failed to update last fetched time for %s: %v", src.Name, err)
	}
	lgr.Printf("[DEBUG] source %s: saved %d of %d entries", src.Name, saved, len(items))
	return outcome{status: statusSucceeded, saved: saved}
}

// buildArticle maps a feed entry to an article, entries without link or title are rejected
func (a *Aggregator) buildArticle(src domain.Source, item domain.ParsedItem, fetchedAt time.Time) (*domain.Article, bool) {
	if item.Link == "" || item.Title == "" {
		return nil, false
	}

	excerpt := a.normalizer.Excerpt(content.SelectRaw(item.Content, item.Description))

	author := item.Author
	if author == "" {
		author = src.AuthorName()
	}

	published := item.Published
	if published.IsZero() {
		published = fetchedAt
	}

	return &domain.Article{
		SourceID:    src.ID,
		URL:         item.Link,
		Title:       item.Title,
		Excerpt:     excerpt,
		AuthorName:  author,
		Topic:       a.classifier.Classify(item.Title, excerpt),
		PublishedAt: published,
		FetchedAt:   fetchedAt,
	}, true
}
