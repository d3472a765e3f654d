package service

import (
	"context"
	"io"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// Notifier is the moderation notification collaborator. It is invoked
// once per article, after the draft has been persisted.
type Notifier interface {
	// NotifyProposed sends the moderation message for a freshly
	// proposed draft. A failure is logged by the caller and never
	// surfaced to the submitting user.
	NotifyProposed(ctx context.Context, news *domain.News, authorName string) error
}

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// NewsPage is one page of a news listing.
type NewsPage struct {
	Items   []domain.News `json:"items"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// NewsServiceInterface defines the moderation workflow operations.
// Used for dependency injection and mocking in tests.
type NewsServiceInterface interface {
	// Propose persists a visitor submission as a draft and dispatches
	// the moderation notification.
	Propose(ctx context.Context, form *validator.ProposalForm, authorID string) (*domain.News, error)
	// Get fetches an article; countView records a detail-page view.
	Get(ctx context.Context, id string, countView bool) (*domain.News, error)
	// List applies filter, sort and pagination in that order.
	List(ctx context.Context, filter domain.NewsFilter) (*NewsPage, error)
	// SetStatus overwrites the status of one article.
	SetStatus(ctx context.Context, id, status string) error
	// BulkSetStatus overwrites the status of many articles at once.
	BulkSetStatus(ctx context.Context, ids []string, status string) (int64, error)
	// Export streams every article as NDJSON and returns the count.
	Export(ctx context.Context, w io.Writer) (int, error)
	// Close waits for in-flight notification sends.
	Close()
}

// UserActivity lists a user's commenting footprint.
type UserActivity struct {
	Authored []domain.Comment `json:"authored"`
	Liked    []domain.Comment `json:"liked"`
}

// CommentServiceInterface defines comment and like operations.
type CommentServiceInterface interface {
	Add(ctx context.Context, newsID, authorID string, form *validator.CommentForm) (*domain.Comment, error)
	ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error)
	Delete(ctx context.Context, commentID, requesterID string) error
	ToggleLike(ctx context.Context, commentID, userID string) (*LikeResult, error)
	Activity(ctx context.Context, userID string) (*UserActivity, error)
}

// LikeResult reports the state of a like after a toggle.
type LikeResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// TagServiceInterface defines tag registry operations.
type TagServiceInterface interface {
	Create(ctx context.Context, form *validator.TagForm) (*domain.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
}

// AuthServiceInterface defines account and profile operations.
type AuthServiceInterface interface {
	Register(ctx context.Context, form *validator.RegistrationForm) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetOrCreateProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, profile *domain.Profile) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
