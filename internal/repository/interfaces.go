package repository

import (
	"context"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
)

// NewsRepository defines methods for news data access.
type NewsRepository interface {
	Create(ctx context.Context, news *domain.News, tagIDs []string) error
	GetByID(ctx context.Context, id string) (*domain.News, error)
	// List applies filter, sort and pagination in that order and
	// returns the page plus the total count of matching rows.
	List(ctx context.Context, filter domain.NewsFilter) ([]domain.News, int, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
	// IncrementViews atomically bumps the view counter by one and
	// returns the new value.
	IncrementViews(ctx context.Context, id string) (int, error)
	// MarkNotified sets the notified flag. It touches only that field.
	MarkNotified(ctx context.Context, id string) error
	StreamAll(ctx context.Context, callback func(domain.News) error) error
}

// TagRepository defines methods for tag data access.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
	// ToggleLike adds the like if absent, removes it otherwise, and
	// returns whether the comment is liked afterwards plus the new count.
	ToggleLike(ctx context.Context, commentID, userID string) (bool, int, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error)
	ListLikedBy(ctx context.Context, userID string) ([]domain.Comment, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	GetOrCreateProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) error
	CreateResetToken(ctx context.Context, token *domain.PasswordResetToken) error
	GetResetToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	MarkResetTokenUsed(ctx context.Context, token string) error
}
