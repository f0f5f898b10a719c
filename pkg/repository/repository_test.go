package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	cfg := Config{
		DSN:          "file:" + filepath.Join(t.TempDir(), "test.db") + "?mode=rwc",
		MaxOpenConns: 1,
	}
	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	return repos, func() { _ = repos.Close() }
}

// createSource is a test helper registering a source
func createSource(t *testing.T, repos *Repositories, slug string, at domain.AuthorType) *domain.Source {
	t.Helper()
	src := &domain.Source{
		Slug:       slug,
		Name:       "Source " + slug,
		URL:        "https://" + slug + ".example.com",
		FeedURL:    "https://" + slug + ".example.com/feed",
		AuthorType: at,
		Active:     true,
	}
	require.NoError(t, repos.Source.UpsertSource(context.Background(), src))
	return src
}

func TestRepositories_Integration(t *testing.T) {
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	require.NoError(t, repos.Ping(context.Background()))

	src := createSource(t, repos, "spacenews", domain.AuthorJournalist)
	assert.NotZero(t, src.ID)

	article := &domain.Article{
		SourceID:    src.ID,
		URL:         "https://spacenews.example.com/a1",
		Title:       "First article",
		Excerpt:     "excerpt",
		AuthorName:  "Jeff",
		Topic:       domain.TopicBusiness,
		PublishedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repos.Article.UpsertArticle(context.Background(), article))
	assert.NotZero(t, article.ID)
	assert.False(t, article.FetchedAt.IsZero(), "fetched time defaults to now")

	got, err := repos.Article.GetArticleByURL(context.Background(), article.URL)
	require.NoError(t, err)
	assert.Equal(t, "First article", got.Title)
	assert.Equal(t, "Source spacenews", got.SourceName)
	assert.Equal(t, domain.AuthorJournalist, got.AuthorType)
}

func TestNewRepositories_SchemaIsIdempotent(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "idem.db") + "?mode=rwc"

	repos, err := NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	createSource(t, repos, "alpha", domain.AuthorEngineer)
	require.NoError(t, repos.Close())

	repos, err = NewRepositories(context.Background(), Config{DSN: dsn})
	require.NoError(t, err)
	defer repos.Close()

	sources, err := repos.Source.GetSources(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, sources, 1)
}

func TestIsLockError(t *testing.T) {
	assert.False(t, isLockError(nil))
	assert.False(t, isLockError(assert.AnError))
	assert.True(t, isLockError(errString("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isLockError(errString("database table is locked")))
	assert.False(t, isLockError(errString("UNIQUE constraint failed")))
}

func TestRetryOnLock(t *testing.T) {
	t.Run("retries lock errors", func(t *testing.T) {
		calls := 0
		err := retryOnLock(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errString("database is locked")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on other errors", func(t *testing.T) {
		calls := 0
		err := retryOnLock(context.Background(), func() error {
			calls++
			return errString("CHECK constraint failed")
		})
		require.Error(t, err)
		assert.Equal(t, "CHECK constraint failed", err.Error())
		assert.Equal(t, 1, calls)
	})
}

type errString string

func (e errString) Error() string { return string(e) }
