package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

// DefaultTimeout is the per-feed fetch ceiling
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent identifies the fetcher to feed publishers
const DefaultUserAgent = "SpaceNexus-BlogFetcher/1.0 (+https://spacenexus.us)"

// ErrTimeout is returned when a feed didn't complete within the parser's timeout
var ErrTimeout = errors.New("feed fetch timed out")

// Parser fetches and parses RSS/Atom feeds
type Parser struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

type parseResult struct {
	feed *domain.ParsedFeed
	err  error
}

// Parse fetches and parses a feed from the given URL.
// The request is raced against an independent timer so a client or transport
// ignoring its own deadline can't hold the caller past the timeout. On expiry the
// in-flight request keeps running in the background and its result is discarded.
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resCh := make(chan parseResult, 1) // buffered, abandoned sender must not block
	go func() {
		f, err := p.parse(ctx, url)
		resCh <- parseResult{feed: f, err: err}
	}()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	select {
	case res := <-resCh:
		return res.feed, res.err
	case <-timer.C:
		return nil, fmt.Errorf("%w after %v: %s", ErrTimeout, p.timeout, url)
	}
}

// parse does the actual fetch and conversion
func (p *Parser) parse(ctx context.Context, url string) (*domain.ParsedFeed, error) {
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parser := gofeed.NewParser()
	feed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedFeed{
		Title:       feed.Title,
		Description: feed.Description,
		Link:        feed.Link,
		Items:       make([]domain.ParsedItem, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		parsedItem := domain.ParsedItem{
			GUID:        item.GUID,
			Title:       strings.TrimSpace(item.Title),
			Link:        strings.TrimSpace(item.Link),
			Description: item.Description,
			Content:     item.Content,
		}

		// set author, rss author and dc:creator end up in the same place
		if item.Author != nil && item.Author.Name != "" {
			parsedItem.Author = item.Author.Name
		} else if len(item.Authors) > 0 && item.Authors[0] != nil {
			parsedItem.Author = item.Authors[0].Name
		}
		parsedItem.Author = strings.TrimSpace(parsedItem.Author)

		// set published time
		if item.PublishedParsed != nil {
			parsedItem.Published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			parsedItem.Published = *item.UpdatedParsed
		}

		result.Items = append(result.Items, parsedItem)
	}

	return result, nil
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addFeedHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
