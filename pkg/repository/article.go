package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/spacenexus/nexusfeed/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID          int64     `db:"id"`
	SourceID    int64     `db:"source_id"`
	URL         string    `db:"url"`
	Title       string    `db:"title"`
	Excerpt     string    `db:"excerpt"`
	AuthorName  string    `db:"author_name"`
	Topic       string    `db:"topic"`
	PublishedAt time.Time `db:"published_at"`
	FetchedAt   time.Time `db:"fetched_at"`
	CreatedAt   time.Time `db:"created_at"`

	// joined data, populated by list queries
	SourceName string `db:"source_name"`
	SourceSlug string `db:"source_slug"`
	AuthorType string `db:"author_type"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// UpsertArticle stores an article keyed by URL. An existing record keeps its source and
// creation time and gets title, excerpt, author, topic, published and fetched times refreshed.
// Sets article.ID.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article) error {
	if article.URL == "" {
		return errors.New("upsert article: empty url")
	}
	fetchedAt := article.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	query := `
		INSERT INTO articles (source_id, url, title, excerpt, author_name, topic, published_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			title = excluded.title,
			excerpt = excluded.excerpt,
			author_name = excluded.author_name,
			topic = excluded.topic,
			published_at = excluded.published_at,
			fetched_at = excluded.fetched_at
		RETURNING id
	`

	var id int64
	err := retryOnLock(ctx, func() error {
		return r.db.GetContext(ctx, &id, query, article.SourceID, article.URL, article.Title, article.Excerpt,
			article.AuthorName, string(article.Topic), utc(article.PublishedAt), utc(fetchedAt))
	})
	if err != nil {
		return fmt.Errorf("upsert article %s: %w", article.URL, err)
	}

	article.ID = id
	article.FetchedAt = fetchedAt
	return nil
}

// GetArticleByURL retrieves an article by its URL
func (r *ArticleRepository) GetArticleByURL(ctx context.Context, url string) (*domain.Article, error) {
	var row articleSQL
	query := `
		SELECT a.*, s.name AS source_name, s.slug AS source_slug, s.author_type AS author_type
		FROM articles a
		JOIN sources s ON s.id = a.source_id
		WHERE a.url = ?
	`
	if err := r.db.GetContext(ctx, &row, query, url); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get article %s: %w", url, ErrNotFound)
		}
		return nil, fmt.Errorf("get article %s: %w", url, err)
	}
	a := row.toDomain()
	return &a, nil
}

// ListArticles returns a page of articles matching the filter, most recent first, and the total count.
// Author type is filtered through the owning source. Limit and offset are used as given.
func (r *ArticleRepository) ListArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, int, error) {
	var conds []string
	var args []any
	if filter.Topic != "" {
		conds = append(conds, "a.topic = ?")
		args = append(args, string(filter.Topic))
	}
	if filter.AuthorType != "" {
		conds = append(conds, "s.author_type = ?")
		args = append(args, string(filter.AuthorType))
	}
	if filter.SourceID != 0 {
		conds = append(conds, "a.source_id = ?")
		args = append(args, filter.SourceID)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM articles a JOIN sources s ON s.id = a.source_id " + where
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	query := `
		SELECT a.*, s.name AS source_name, s.slug AS source_slug, s.author_type AS author_type
		FROM articles a
		JOIN sources s ON s.id = a.source_id
		` + where + `
		ORDER BY a.published_at DESC, a.id DESC
		LIMIT ? OFFSET ?
	`
	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, append(args, filter.Limit, filter.Offset)...); err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}

	res := make([]domain.Article, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, total, nil
}

// CountArticles returns the number of stored articles
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// toDomain converts articleSQL to domain.Article
func (a *articleSQL) toDomain() domain.Article {
	return domain.Article{
		ID:          a.ID,
		SourceID:    a.SourceID,
		URL:         a.URL,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		AuthorName:  a.AuthorName,
		Topic:       domain.Topic(a.Topic),
		PublishedAt: a.PublishedAt,
		FetchedAt:   a.FetchedAt,
		CreatedAt:   a.CreatedAt,
		SourceName:  a.SourceName,
		SourceSlug:  a.SourceSlug,
		AuthorType:  domain.AuthorType(a.AuthorType),
	}
}
