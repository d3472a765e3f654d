package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/mocks"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

func newCommentService(t *testing.T) (*service.CommentService, *mocks.MockCommentRepository, *mocks.MockNewsRepository, *mocks.MockUserRepository) {
	t.Helper()

	commentRepo := mocks.NewMockCommentRepository(t)
	newsRepo := mocks.NewMockNewsRepository(t)
	userRepo := mocks.NewMockUserRepository(t)

	svc := service.NewCommentService(commentRepo, newsRepo, userRepo, validator.NewValidator())
	return svc, commentRepo, newsRepo, userRepo
}

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("creates comment on existing article", func(t *testing.T) {
		svc, commentRepo, newsRepo, _ := newCommentService(t)

		newsID := uuid.New().String()
		newsRepo.EXPECT().
			GetByID(mock.Anything, newsID).
			Return(&domain.News{ID: newsID}, nil)
		commentRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).
			Return(nil)

		comment, err := svc.Add(ctx, newsID, "user-1", &validator.CommentForm{Content: "Nice article"})

		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, newsID, comment.NewsID)
		assert.Equal(t, "user-1", comment.AuthorID)
		assert.NotEmpty(t, comment.ID)
	})

	t.Run("rejects comment on missing article", func(t *testing.T) {
		svc, _, newsRepo, _ := newCommentService(t)

		newsRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, domain.ErrNotFound)

		comment, err := svc.Add(ctx, "missing", "user-1", &validator.CommentForm{Content: "Hello"})

		require.Error(t, err)
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		svc, _, _, _ := newCommentService(t)

		comment, err := svc.Add(ctx, "news-1", "user-1", &validator.CommentForm{})

		require.Error(t, err)
		assert.Nil(t, comment)
	})

	t.Run("rejects comment over 500 words", func(t *testing.T) {
		svc, _, _, _ := newCommentService(t)

		long := strings.Repeat("word ", 501)
		comment, err := svc.Add(ctx, "news-1", "user-1", &validator.CommentForm{Content: long})

		require.Error(t, err)
		assert.Nil(t, comment)
	})
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("author deletes own comment", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		comment := &domain.Comment{ID: "c1", AuthorID: "user-1"}
		commentRepo.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(comment, nil)
		commentRepo.EXPECT().
			Delete(mock.Anything, "c1").
			Return(nil)

		err := svc.Delete(ctx, "c1", "user-1")
		require.NoError(t, err)
	})

	t.Run("moderator deletes another user's comment", func(t *testing.T) {
		svc, commentRepo, _, userRepo := newCommentService(t)

		comment := &domain.Comment{ID: "c1", AuthorID: "user-1"}
		commentRepo.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(comment, nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "mod-1").
			Return(&domain.User{ID: "mod-1", Role: domain.RoleModerator}, nil)
		commentRepo.EXPECT().
			Delete(mock.Anything, "c1").
			Return(nil)

		err := svc.Delete(ctx, "c1", "mod-1")
		require.NoError(t, err)
	})

	t.Run("regular user may not delete another user's comment", func(t *testing.T) {
		svc, commentRepo, _, userRepo := newCommentService(t)

		comment := &domain.Comment{ID: "c1", AuthorID: "user-1"}
		commentRepo.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(comment, nil)
		userRepo.EXPECT().
			GetByID(mock.Anything, "user-2").
			Return(&domain.User{ID: "user-2", Role: domain.RoleUser}, nil)

		err := svc.Delete(ctx, "c1", "user-2")
		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		commentRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, domain.ErrNotFound)

		err := svc.Delete(ctx, "missing", "user-1")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentService_ToggleLike(t *testing.T) {
	ctx := context.Background()

	t.Run("first toggle likes the comment", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		commentRepo.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(&domain.Comment{ID: "c1"}, nil)
		commentRepo.EXPECT().
			ToggleLike(mock.Anything, "c1", "user-1").
			Return(true, 4, nil)

		result, err := svc.ToggleLike(ctx, "c1", "user-1")

		require.NoError(t, err)
		assert.True(t, result.Liked)
		assert.Equal(t, 4, result.LikeCount)
	})

	t.Run("second toggle removes the like", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		commentRepo.EXPECT().
			GetByID(mock.Anything, "c1").
			Return(&domain.Comment{ID: "c1"}, nil)
		commentRepo.EXPECT().
			ToggleLike(mock.Anything, "c1", "user-1").
			Return(false, 3, nil)

		result, err := svc.ToggleLike(ctx, "c1", "user-1")

		require.NoError(t, err)
		assert.False(t, result.Liked)
		assert.Equal(t, 3, result.LikeCount)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		commentRepo.EXPECT().
			GetByID(mock.Anything, "missing").
			Return(nil, domain.ErrNotFound)

		result, err := svc.ToggleLike(ctx, "missing", "user-1")

		require.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCommentService_Activity(t *testing.T) {
	ctx := context.Background()

	t.Run("collects authored and liked comments", func(t *testing.T) {
		svc, commentRepo, _, _ := newCommentService(t)

		authored := []domain.Comment{{ID: "c1", AuthorID: "user-1"}}
		liked := []domain.Comment{{ID: "c2", AuthorID: "user-2"}}
		commentRepo.EXPECT().
			ListByAuthor(mock.Anything, "user-1").
			Return(authored, nil)
		commentRepo.EXPECT().
			ListLikedBy(mock.Anything, "user-1").
			Return(liked, nil)

		activity, err := svc.Activity(ctx, "user-1")

		require.NoError(t, err)
		assert.Len(t, activity.Authored, 1)
		assert.Len(t, activity.Liked, 1)
	})
}
