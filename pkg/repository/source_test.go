package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

func TestSourceRepository_UpsertSource(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	src := &domain.Source{
		Slug:       "payload",
		Name:       "Payload",
		URL:        "https://payloadspace.com",
		FeedURL:    "https://payloadspace.com/feed/",
		AuthorType: domain.AuthorJournalist,
		Active:     true,
	}
	require.NoError(t, repos.Source.UpsertSource(ctx, src))
	firstID := src.ID
	require.NotZero(t, firstID)

	// record a fetch, registration must not reset it
	fetchedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Source.UpdateLastFetched(ctx, firstID, fetchedAt))

	updated := &domain.Source{
		Slug:          "payload",
		Name:          "Payload Space",
		URL:           "https://payloadspace.com",
		AuthorType:    domain.AuthorConsultant,
		DefaultAuthor: "Payload Staff",
		Active:        false,
	}
	require.NoError(t, repos.Source.UpsertSource(ctx, updated))
	assert.Equal(t, firstID, updated.ID, "same slug resolves to the same record")

	got, err := repos.Source.GetSourceBySlug(ctx, "payload")
	require.NoError(t, err)
	assert.Equal(t, "Payload Space", got.Name)
	assert.Empty(t, got.FeedURL, "feed url cleared to NULL")
	assert.False(t, got.HasFeed())
	assert.Equal(t, domain.AuthorConsultant, got.AuthorType)
	assert.Equal(t, "Payload Staff", got.DefaultAuthor)
	assert.False(t, got.Active)
	require.NotNil(t, got.LastFetched)
	assert.True(t, fetchedAt.Equal(*got.LastFetched))

	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSourceRepository_UpsertSource_InvalidAuthorType(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	err := repos.Source.UpsertSource(context.Background(), &domain.Source{
		Slug: "bad", Name: "Bad", AuthorType: "astronaut",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert source bad")
}

func TestSourceRepository_GetSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	createSource(t, repos, "zeta", domain.AuthorJournalist)
	createSource(t, repos, "alpha", domain.AuthorLawyer)
	createSource(t, repos, "mid", domain.AuthorEngineer)
	require.NoError(t, repos.Source.SetActive(ctx, "mid", false))

	active, err := repos.Source.GetSources(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "zeta", active[0].Slug, "same position falls back to id, not name order")
	assert.Equal(t, "alpha", active[1].Slug)

	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSourceRepository_GetSources_RegistryOrder(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	register := func(slugs ...string) {
		for i, slug := range slugs {
			src := &domain.Source{Slug: slug, Name: "Source " + slug, AuthorType: domain.AuthorJournalist,
				FeedURL: "https://" + slug + ".example.com/feed", Active: true, Position: i}
			require.NoError(t, repos.Source.UpsertSource(ctx, src))
		}
	}
	slugs := func(sources []domain.Source) []string {
		res := make([]string, 0, len(sources))
		for _, s := range sources {
			res = append(res, s.Slug)
		}
		return res
	}

	register("beta")
	register("alpha", "beta")

	active, err := repos.Source.GetSources(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, slugs(active), "new source at the front is fetched first")
	assert.Equal(t, 0, active[0].Position)
	assert.Equal(t, 1, active[1].Position)

	register("beta", "alpha")
	all, err := repos.Source.GetSources(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, slugs(all), "reordered registry reorders the fetch")
}

func TestSourceRepository_ActiveOverride(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	upsert := func(slug string, active bool) *domain.Source {
		src := &domain.Source{Slug: slug, Name: "Source " + slug, AuthorType: domain.AuthorLawyer, Active: active}
		require.NoError(t, repos.Source.UpsertSource(ctx, src))
		return src
	}
	isActive := func(slug string) bool {
		src, err := repos.Source.GetSourceBySlug(ctx, slug)
		require.NoError(t, err)
		return src.Active
	}

	t.Run("admin disable survives re-registration", func(t *testing.T) {
		upsert("kept-off", true)
		require.NoError(t, repos.Source.SetActive(ctx, "kept-off", false))

		src := upsert("kept-off", true)
		assert.False(t, src.Active, "effective flag returned from upsert")
		assert.False(t, isActive("kept-off"))

		active, err := repos.Source.GetSources(ctx, true)
		require.NoError(t, err)
		for _, s := range active {
			assert.NotEqual(t, "kept-off", s.Slug)
		}
	})

	t.Run("admin enable wins over inactive registry entry", func(t *testing.T) {
		upsert("kept-on", false)
		assert.False(t, isActive("kept-on"))
		require.NoError(t, repos.Source.SetActive(ctx, "kept-on", true))

		upsert("kept-on", false)
		assert.True(t, isActive("kept-on"))
	})

	t.Run("registry flag applies without override", func(t *testing.T) {
		upsert("plain", true)
		assert.True(t, isActive("plain"))
		upsert("plain", false)
		assert.False(t, isActive("plain"))
		upsert("plain", true)
		assert.True(t, isActive("plain"))
	})
}

func TestSourceRepository_ListSources(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	zeta := createSource(t, repos, "zeta", domain.AuthorJournalist)
	alpha := createSource(t, repos, "alpha", domain.AuthorJournalist)
	createSource(t, repos, "law", domain.AuthorLawyer)
	createSource(t, repos, "off", domain.AuthorJournalist)
	require.NoError(t, repos.Source.SetActive(ctx, "off", false))

	for i, u := range []string{"https://z/1", "https://z/2", "https://z/3"} {
		require.NoError(t, repos.Article.UpsertArticle(ctx, &domain.Article{
			SourceID: zeta.ID, URL: u, Title: "z", Topic: domain.TopicPolicy,
			PublishedAt: time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repos.Article.UpsertArticle(ctx, &domain.Article{
		SourceID: alpha.ID, URL: "https://a/1", Title: "a", Topic: domain.TopicPolicy, PublishedAt: time.Now(),
	}))

	t.Run("default is active only, ordered by name", func(t *testing.T) {
		res, err := repos.Source.ListSources(ctx, domain.SourceFilter{})
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, "alpha", res[0].Slug)
		assert.Equal(t, 1, res[0].ArticleCount)
		assert.Equal(t, "law", res[1].Slug)
		assert.Equal(t, 0, res[1].ArticleCount)
		assert.Equal(t, "zeta", res[2].Slug)
		assert.Equal(t, 3, res[2].ArticleCount)
	})

	t.Run("author type filter", func(t *testing.T) {
		res, err := repos.Source.ListSources(ctx, domain.SourceFilter{AuthorType: domain.AuthorLawyer})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "law", res[0].Slug)
	})

	t.Run("inactive only", func(t *testing.T) {
		inactive := false
		res, err := repos.Source.ListSources(ctx, domain.SourceFilter{Active: &inactive})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "off", res[0].Slug)
	})
}

func TestSourceRepository_SetActive_NotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	err := repos.Source.SetActive(context.Background(), "missing", true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repos.Source.GetSourceBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repos.Source.GetSource(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
