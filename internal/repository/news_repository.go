package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
)

// PostgresNewsRepository implements NewsRepository using PostgreSQL.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsRepository creates a new PostgresNewsRepository.
func NewPostgresNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

const newsColumns = `id, title, brief, content, pub_date, views, status, image_path, author_id, notified, created_at, updated_at`

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	err := row.Scan(&n.ID, &n.Title, &n.Brief, &n.Content, &n.PubDate, &n.Views,
		&n.Status, &n.ImagePath, &n.AuthorID, &n.Notified, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a news record and its tag associations in one transaction.
func (r *PostgresNewsRepository) Create(ctx context.Context, news *domain.News, tagIDs []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO news (id, title, brief, content, pub_date, views, status, image_path, author_id, notified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, news.ID, news.Title, news.Brief, news.Content, news.PubDate, news.Views,
		news.Status, news.ImagePath, news.AuthorID, news.Notified, news.CreatedAt, news.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO news_tags (news_id, tag_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, news.ID, tagID)
		if err != nil {
			return fmt.Errorf("insert news tag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a news record with its tags.
func (r *PostgresNewsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	news, err := scanNews(r.pool.QueryRow(ctx, `
		SELECT `+newsColumns+` FROM news WHERE id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}

	tagsByNews, err := r.loadTags(ctx, []string{news.ID})
	if err != nil {
		return nil, err
	}
	news.Tags = tagsByNews[news.ID]

	return news, nil
}

// List applies filter, sort and pagination in that order.
func (r *PostgresNewsRepository) List(ctx context.Context, filter domain.NewsFilter) ([]domain.News, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	argNum := 1

	add := func(cond string, value interface{}) {
		conds = append(conds, fmt.Sprintf(cond, argNum))
		args = append(args, value)
		argNum++
	}

	if filter.Status != "" {
		add("n.status = $%d", filter.Status)
	}
	if filter.AuthorID != "" {
		add("n.author_id = $%d", filter.AuthorID)
	}
	if filter.Query != "" {
		cond := fmt.Sprintf("(n.title ILIKE $%d OR n.content ILIKE $%d)", argNum, argNum)
		conds = append(conds, cond)
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		argNum++
	}
	if filter.TagSlug != "" {
		cond := fmt.Sprintf(`n.id IN (
			SELECT nt.news_id FROM news_tags nt
			JOIN tags t ON t.id = nt.tag_id
			WHERE t.slug = $%d
		)`, argNum)
		conds = append(conds, cond)
		args = append(args, filter.TagSlug)
		argNum++
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	sortBy := filter.SortBy
	if !domain.IsSortableField(sortBy) {
		sortBy = "pub_date"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}
	offset := (page - 1) * perPage

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM news n
		%s
		ORDER BY n.%s %s, n.id
		LIMIT $%d OFFSET $%d
	`, prefixColumns("n", newsColumns), where, sortBy, direction, argNum, argNum+1)
	args = append(args, perPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var (
		items []domain.News
		total int
		ids   []string
	)
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Brief, &n.Content, &n.PubDate, &n.Views,
			&n.Status, &n.ImagePath, &n.AuthorID, &n.Notified, &n.CreatedAt, &n.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, n)
		ids = append(ids, n.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read news rows: %w", err)
	}

	if len(ids) > 0 {
		tagsByNews, err := r.loadTags(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range items {
			items[i].Tags = tagsByNews[items[i].ID]
		}
	}

	return items, total, nil
}

// UpdateStatus overwrites the status of a single article.
func (r *PostgresNewsRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE news SET status = $2, updated_at = NOW() WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("update news status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// BulkUpdateStatus overwrites the status of the given articles and
// returns how many rows changed. Unknown ids are skipped silently.
func (r *PostgresNewsRepository) BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE news SET status = $2, updated_at = NOW() WHERE id = ANY($1)
	`, ids, status)
	if err != nil {
		return 0, fmt.Errorf("bulk update news status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// IncrementViews bumps the view counter in a single UPDATE so that
// concurrent detail-page fetches never lose updates.
func (r *PostgresNewsRepository) IncrementViews(ctx context.Context, id string) (int, error) {
	var views int
	err := r.pool.QueryRow(ctx, `
		UPDATE news SET views = views + 1 WHERE id = $1 RETURNING views
	`, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment views: %w", err)
	}
	return views, nil
}

// MarkNotified sets the notified flag, touching only that field.
func (r *PostgresNewsRepository) MarkNotified(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE news SET notified = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// StreamAll streams all news records for export with O(1) memory.
func (r *PostgresNewsRepository) StreamAll(ctx context.Context, callback func(domain.News) error) error {
	rows, err := r.pool.Query(ctx, `
		SELECT `+newsColumns+` FROM news ORDER BY created_at
	`)
	if err != nil {
		return fmt.Errorf("query news: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Brief, &n.Content, &n.PubDate, &n.Views,
			&n.Status, &n.ImagePath, &n.AuthorID, &n.Notified, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return fmt.Errorf("scan news: %w", err)
		}

		if err := callback(n); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// loadTags fetches tags for a set of news ids in one query.
func (r *PostgresNewsRepository) loadTags(ctx context.Context, newsIDs []string) (map[string][]domain.Tag, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT nt.news_id, t.id, t.name, t.slug
		FROM news_tags nt
		JOIN tags t ON t.id = nt.tag_id
		WHERE nt.news_id = ANY($1)
		ORDER BY t.name
	`, newsIDs)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.Tag)
	for rows.Next() {
		var newsID string
		var t domain.Tag
		if err := rows.Scan(&newsID, &t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		result[newsID] = append(result[newsID], t)
	}
	return result, rows.Err()
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, p := range parts {
		parts[i] = alias + "." + p
	}
	return strings.Join(parts, ", ")
}

// escapeLike escapes LIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
