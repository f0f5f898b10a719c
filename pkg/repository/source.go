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

// ErrNotFound is returned when a requested record doesn't exist
var ErrNotFound = errors.New("not found")

// activeExpr is the effective activation flag, admin override first
const activeExpr = "COALESCE(active_override, registry_active)"

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID             int64          `db:"id"`
	Slug           string         `db:"slug"`
	Name           string         `db:"name"`
	URL            string         `db:"url"`
	FeedURL        sql.NullString `db:"feed_url"`
	AuthorType     string         `db:"author_type"`
	DefaultAuthor  string         `db:"default_author"`
	Description    string         `db:"description"`
	Position       int            `db:"position"`
	RegistryActive bool           `db:"registry_active"`
	ActiveOverride sql.NullBool   `db:"active_override"`
	LastFetched    *time.Time     `db:"last_fetched"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	// populated by list queries only
	ArticleCount int `db:"article_count"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// UpsertSource inserts a source or updates the existing one with the same slug.
// Fetch bookkeeping (last_fetched) and the admin activation override are never touched
// by registration, src.Active only applies while no override is set. Sets src.ID and src.Active.
func (r *SourceRepository) UpsertSource(ctx context.Context, src *domain.Source) error {
	query := `
		INSERT INTO sources (slug, name, url, feed_url, author_type, default_author, description, position, registry_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			url = excluded.url,
			feed_url = excluded.feed_url,
			author_type = excluded.author_type,
			default_author = excluded.default_author,
			description = excluded.description,
			position = excluded.position,
			registry_active = excluded.registry_active,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, ` + activeExpr + ` AS active
	`
	feedURL := sql.NullString{String: src.FeedURL, Valid: src.FeedURL != ""}

	var res struct {
		ID     int64 `db:"id"`
		Active bool  `db:"active"`
	}
	err := retryOnLock(ctx, func() error {
		return r.db.GetContext(ctx, &res, query, src.Slug, src.Name, src.URL, feedURL,
			string(src.AuthorType), src.DefaultAuthor, src.Description, src.Position, src.Active)
	})
	if err != nil {
		return fmt.Errorf("upsert source %s: %w", src.Slug, err)
	}

	src.ID, src.Active = res.ID, res.Active
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var row sourceSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get source %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get source %d: %w", id, err)
	}
	src := row.toDomain()
	return &src, nil
}

// GetSourceBySlug retrieves a source by its slug
func (r *SourceRepository) GetSourceBySlug(ctx context.Context, slug string) (*domain.Source, error) {
	var row sourceSQL
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM sources WHERE slug = ?", slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get source %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("get source %s: %w", slug, err)
	}
	src := row.toDomain()
	return &src, nil
}

// GetSources retrieves sources in registry order (position of the last registration), optionally active only
func (r *SourceRepository) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	query := "SELECT * FROM sources"
	if activeOnly {
		query += " WHERE " + activeExpr + " = 1"
	}
	query += " ORDER BY position, id"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	res := make([]domain.Source, len(rows))
	for i := range rows {
		res[i] = rows[i].toDomain()
	}
	return res, nil
}

// ListSources returns sources ordered by name, each with its article count
func (r *SourceRepository) ListSources(ctx context.Context, filter domain.SourceFilter) ([]domain.SourceWithCount, error) {
	active := true
	if filter.Active != nil {
		active = *filter.Active
	}

	conds := []string{"COALESCE(s.active_override, s.registry_active) = ?"}
	args := []any{active}
	if filter.AuthorType != "" {
		conds = append(conds, "s.author_type = ?")
		args = append(args, string(filter.AuthorType))
	}

	query := `
		SELECT s.*, COUNT(a.id) AS article_count
		FROM sources s
		LEFT JOIN articles a ON a.source_id = s.id
		WHERE ` + strings.Join(conds, " AND ") + `
		GROUP BY s.id
		ORDER BY s.name COLLATE NOCASE, s.id
	`

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	res := make([]domain.SourceWithCount, len(rows))
	for i := range rows {
		res[i] = domain.SourceWithCount{Source: rows[i].toDomain(), ArticleCount: rows[i].ArticleCount}
	}
	return res, nil
}

// UpdateLastFetched records a completed fetch of the source
func (r *SourceRepository) UpdateLastFetched(ctx context.Context, sourceID int64, fetchedAt time.Time) error {
	err := retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE sources SET last_fetched = ? WHERE id = ?", utc(fetchedAt), sourceID)
		return err
	})
	if err != nil {
		return fmt.Errorf("update last fetched for source %d: %w", sourceID, err)
	}
	return nil
}

// SetActive enables or disables a source by slug, history is kept either way.
// The choice is stored as an override that later registrations don't reset.
func (r *SourceRepository) SetActive(ctx context.Context, slug string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE sources SET active_override = ?, updated_at = CURRENT_TIMESTAMP WHERE slug = ?", active, slug)
	if err != nil {
		return fmt.Errorf("set source %s active=%v: %w", slug, active, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("set source %s active=%v: %w", slug, active, ErrNotFound)
	}
	return nil
}

func (s *sourceSQL) active() bool {
	if s.ActiveOverride.Valid {
		return s.ActiveOverride.Bool
	}
	return s.RegistryActive
}

// toDomain converts sourceSQL to domain.Source
func (s *sourceSQL) toDomain() domain.Source {
	return domain.Source{
		ID:            s.ID,
		Slug:          s.Slug,
		Name:          s.Name,
		URL:           s.URL,
		FeedURL:       s.FeedURL.String,
		AuthorType:    domain.AuthorType(s.AuthorType),
		DefaultAuthor: s.DefaultAuthor,
		Description:   s.Description,
		Active:        s.active(),
		Position:      s.Position,
		LastFetched:   s.LastFetched,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
