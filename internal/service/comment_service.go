package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// CommentService owns comment and like operations.
type CommentService struct {
	commentRepo repository.CommentRepository
	newsRepo    repository.NewsRepository
	userRepo    repository.UserRepository
	v           *validator.Validator
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	newsRepo repository.NewsRepository,
	userRepo repository.UserRepository,
	v *validator.Validator,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		newsRepo:    newsRepo,
		userRepo:    userRepo,
		v:           v,
	}
}

// Add attaches a comment to an existing article with the current
// timestamp.
func (s *CommentService) Add(ctx context.Context, newsID, authorID string, form *validator.CommentForm) (*domain.Comment, error) {
	if err := s.v.ValidateComment(form); err != nil {
		return nil, err
	}

	if _, err := s.newsRepo.GetByID(ctx, newsID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		NewsID:    newsID,
		AuthorID:  authorID,
		Content:   form.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// ListByNews returns the comments on an article, oldest first.
func (s *CommentService) ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error) {
	if _, err := s.newsRepo.GetByID(ctx, newsID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByNews(ctx, newsID)
}

// Delete removes a comment. Only its author or a privileged account
// may delete it; anyone else gets ErrPermissionDenied and the comment
// is left unchanged.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.AuthorID != requesterID {
		requester, err := s.userRepo.GetByID(ctx, requesterID)
		if err != nil {
			return err
		}
		if !requester.IsPrivileged() {
			return domain.ErrPermissionDenied
		}
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// ToggleLike flips the (comment, account) like relation. Toggling
// twice in succession restores the original like count.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID string) (*LikeResult, error) {
	if _, err := s.commentRepo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	liked, count, err := s.commentRepo.ToggleLike(ctx, commentID, userID)
	if err != nil {
		return nil, fmt.Errorf("toggle like: %w", err)
	}

	return &LikeResult{Liked: liked, LikeCount: count}, nil
}

// Activity returns the comments a user has authored and liked.
func (s *CommentService) Activity(ctx context.Context, userID string) (*UserActivity, error) {
	authored, err := s.commentRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := s.commentRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserActivity{Authored: authored, Liked: liked}, nil
}
