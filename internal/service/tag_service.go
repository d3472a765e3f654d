package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/repository"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/validator"
)

// TagService owns the tag registry and slug derivation.
type TagService struct {
	tagRepo repository.TagRepository
	v       *validator.Validator
}

// NewTagService creates a new TagService.
func NewTagService(tagRepo repository.TagRepository, v *validator.Validator) *TagService {
	return &TagService{tagRepo: tagRepo, v: v}
}

// Create registers a tag. The slug is derived by transliterating the
// name to ASCII; two names that transliterate to the same slug are
// rejected with ErrDuplicateTagName.
func (s *TagService) Create(ctx context.Context, form *validator.TagForm) (*domain.Tag, error) {
	if err := s.v.ValidateTag(form); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(form.Name)
	tag := &domain.Tag{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name),
	}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// GetBySlug resolves a tag by its slug.
func (s *TagService) GetBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	return s.tagRepo.GetBySlug(ctx, slug)
}

// List returns all tags.
func (s *TagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.List(ctx)
}
