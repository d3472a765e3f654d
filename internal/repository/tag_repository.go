package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
)

// PostgresTagRepository implements TagRepository using PostgreSQL.
type PostgresTagRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTagRepository creates a new PostgresTagRepository.
func NewPostgresTagRepository(pool *pgxpool.Pool) *PostgresTagRepository {
	return &PostgresTagRepository{pool: pool}
}

// Create inserts a tag. A name collision, or a slug collision after
// transliteration, is reported as ErrDuplicateTagName.
func (r *PostgresTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tags (id, name, slug) VALUES ($1, $2, $3)
	`, tag.ID, tag.Name, tag.Slug)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateTagName
		}
		return fmt.Errorf("insert tag: %w", err)
	}
	return nil
}

// GetBySlug retrieves a tag by its slug, the stable public identifier.
func (r *PostgresTagRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	var t domain.Tag
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, slug FROM tags WHERE slug = $1
	`, slug).Scan(&t.ID, &t.Name, &t.Slug)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tag by slug: %w", err)
	}
	return &t, nil
}

// List returns all tags ordered by name.
func (r *PostgresTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, slug FROM tags ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	var tags []domain.Tag
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}
