package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/mocks"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

func TestTagService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug from name", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tag *domain.Tag) bool {
				return tag.Name == "City News" && tag.Slug == "city-news"
			})).
			Return(nil)

		tag, err := svc.Create(ctx, &validator.TagForm{Name: "City News"})

		require.NoError(t, err)
		assert.Equal(t, "city-news", tag.Slug)
		assert.NotEmpty(t, tag.ID)
	})

	t.Run("transliterates non-latin names", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tag *domain.Tag) bool {
				return tag.Slug == "novosti"
			})).
			Return(nil)

		tag, err := svc.Create(ctx, &validator.TagForm{Name: "Новости"})

		require.NoError(t, err)
		assert.Equal(t, "Новости", tag.Name)
		assert.Equal(t, "novosti", tag.Slug)
	})

	t.Run("trims whitespace before slugging", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(tag *domain.Tag) bool {
				return tag.Name == "Sport" && tag.Slug == "sport"
			})).
			Return(nil)

		tag, err := svc.Create(ctx, &validator.TagForm{Name: "  Sport  "})

		require.NoError(t, err)
		assert.Equal(t, "Sport", tag.Name)
	})

	t.Run("surfaces duplicate slug collisions", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(domain.ErrDuplicateTagName)

		tag, err := svc.Create(ctx, &validator.TagForm{Name: "Sport"})

		assert.ErrorIs(t, err, domain.ErrDuplicateTagName)
		assert.Nil(t, tag)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tag, err := svc.Create(ctx, &validator.TagForm{})

		require.Error(t, err)
		assert.Nil(t, tag)
	})
}

func TestTagService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("returns tag", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			GetBySlug(mock.Anything, "sport").
			Return(&domain.Tag{ID: "t1", Name: "Sport", Slug: "sport"}, nil)

		tag, err := svc.GetBySlug(ctx, "sport")

		require.NoError(t, err)
		assert.Equal(t, "Sport", tag.Name)
	})

	t.Run("propagates not found", func(t *testing.T) {
		tagRepo := mocks.NewMockTagRepository(t)
		svc := service.NewTagService(tagRepo, validator.NewValidator())

		tagRepo.EXPECT().
			GetBySlug(mock.Anything, "missing").
			Return(nil, domain.ErrNotFound)

		tag, err := svc.GetBySlug(ctx, "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, tag)
	})
}
