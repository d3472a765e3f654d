package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

const commentSelect = `
	SELECT c.id, c.news_id, c.author_id, c.content, c.created_at,
		(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS like_count
	FROM comments c
`

// Create inserts a comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, news_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.NewsID, comment.AuthorID, comment.Content, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment with its like count.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id).
		Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.LikeCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

// ListByNews returns the comments on an article, oldest first.
func (r *PostgresCommentRepository) ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.news_id = $1 ORDER BY c.created_at`, newsID)
}

// Delete removes a comment. Its likes go with it via the FK cascade.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike adds the like if absent, removes it otherwise. Two
// toggles in a row return the comment to its original like count.
func (r *PostgresCommentRepository) ToggleLike(ctx context.Context, commentID, userID string) (bool, int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, commentID, userID)
	if err != nil {
		return false, 0, fmt.Errorf("insert like: %w", err)
	}

	liked := tag.RowsAffected() == 1
	if !liked {
		if _, err := tx.Exec(ctx, `
			DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2
		`, commentID, userID); err != nil {
			return false, 0, fmt.Errorf("delete like: %w", err)
		}
	}

	var count int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1
	`, commentID).Scan(&count); err != nil {
		return false, 0, fmt.Errorf("count likes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, 0, fmt.Errorf("commit transaction: %w", err)
	}

	return liked, count, nil
}

// ListByAuthor returns the comments written by a user, newest first.
func (r *PostgresCommentRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+` WHERE c.author_id = $1 ORDER BY c.created_at DESC`, authorID)
}

// ListLikedBy returns the comments a user has liked, newest first.
func (r *PostgresCommentRepository) ListLikedBy(ctx context.Context, userID string) ([]domain.Comment, error) {
	return r.list(ctx, commentSelect+`
		JOIN comment_likes cl2 ON cl2.comment_id = c.id
		WHERE cl2.user_id = $1
		ORDER BY cl2.created_at DESC`, userID)
}

func (r *PostgresCommentRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.LikeCount); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
