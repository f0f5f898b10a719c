package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenexus/nexusfeed/pkg/domain"
	"github.com/spacenexus/nexusfeed/pkg/service"
	"github.com/spacenexus/nexusfeed/server/mocks"
)

func TestServer_RSS(t *testing.T) {
	pub := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	catalog := &mocks.CatalogMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) (domain.ArticlePage, error) {
			if filter.Topic != "" && !filter.Topic.Valid() {
				return domain.ArticlePage{}, fmt.Errorf("%w: unknown topic %q", service.ErrInvalidFilter, filter.Topic)
			}
			return domain.ArticlePage{Total: 1, Items: []domain.Article{{
				URL: "https://spacenews.example.com/artemis", Title: "Artemis crew named", Excerpt: "NASA named the crew.",
				AuthorName: "Jeff Foust", Topic: domain.TopicExploration, PublishedAt: pub, SourceName: "SpaceNews",
			}}}, nil
		},
	}
	srv := New(testConfig(":0"), &mocks.AggregatorMock{}, catalog, "1.0.0", false)

	t.Run("all topics", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/rss")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "<title>Space Nexus - All Topics</title>")
		assert.Contains(t, w.Body.String(), "<link>http://example.com/</link>")
		assert.Contains(t, w.Body.String(), "<title>[SpaceNews] Artemis crew named</title>")
		assert.Contains(t, w.Body.String(), "<dc:creator>Jeff Foust</dc:creator>")

		calls := catalog.ListArticlesCalls()
		require.NotEmpty(t, calls)
		assert.Equal(t, rssLimit, calls[len(calls)-1].Filter.Limit)
		assert.Empty(t, calls[len(calls)-1].Filter.Topic)
	})

	t.Run("topic in path", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/rss/exploration")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<title>Space Nexus - exploration</title>")

		calls := catalog.ListArticlesCalls()
		assert.Equal(t, domain.TopicExploration, calls[len(calls)-1].Filter.Topic)
	})

	t.Run("topic and author type in query", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/rss?topic=exploration&author_type=journalist")
		require.Equal(t, http.StatusOK, w.Code)

		calls := catalog.ListArticlesCalls()
		assert.Equal(t, domain.TopicExploration, calls[len(calls)-1].Filter.Topic)
		assert.Equal(t, domain.AuthorJournalist, calls[len(calls)-1].Filter.AuthorType)
	})

	t.Run("unknown topic", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/rss/gossip")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w), "unknown topic")
	})

	t.Run("https behind proxy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rss", http.NoBody)
		req.Header.Set("X-Forwarded-Proto", "https")
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `href="https://example.com/rss"`)
	})
}

func TestServer_RSS_StoreError(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListArticlesFunc: func(ctx context.Context, filter domain.ArticleFilter) (domain.ArticlePage, error) {
			return domain.ArticlePage{}, errors.New("database is locked")
		},
	}
	srv := New(testConfig(":0"), &mocks.AggregatorMock{}, catalog, "1.0.0", false)

	w := serve(t, srv, http.MethodGet, "/rss")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_OPML(t *testing.T) {
	catalog := &mocks.CatalogMock{
		ListSourcesFunc: func(ctx context.Context, filter domain.SourceFilter) ([]domain.SourceWithCount, error) {
			assert.Nil(t, filter.Active, "active sources only")
			return []domain.SourceWithCount{
				{Source: domain.Source{Slug: "spacenews", Name: "SpaceNews", URL: "https://spacenews.com",
					FeedURL: "https://spacenews.com/feed/", AuthorType: domain.AuthorJournalist}, ArticleCount: 12},
				{Source: domain.Source{Slug: "quiet-firm", Name: "Quiet Firm", AuthorType: domain.AuthorLawyer}},
			}, nil
		},
	}
	srv := New(testConfig(":0"), &mocks.AggregatorMock{}, catalog, "1.0.0", false)

	w := serve(t, srv, http.MethodGet, "/opml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/x-opml; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "nexusfeed-sources.opml")
	assert.Contains(t, w.Body.String(), `xmlUrl="https://spacenews.com/feed/"`)
	assert.NotContains(t, w.Body.String(), "Quiet Firm")
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://nexus.example.com:8080/rss", http.NoBody)
	assert.Equal(t, "http://nexus.example.com:8080", baseURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://nexus.example.com:8080", baseURL(req))
}
