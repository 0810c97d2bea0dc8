package service

import (
	"context"
	"errors"

	"blogpress/internal/models"
	"blogpress/internal/repository"
)

// TagService owns the tag find-or-create and pivot lifecycle. Two concurrent
// AddTag calls with the same new name can both reach Save; the unique
// constraint on tags.name decides the race, this layer does not serialize it.
type TagService interface {
	AddTag(ctx context.Context, name string, post *models.Post) (*models.Tag, error)
	RemoveTag(ctx context.Context, tag *models.Tag, post *models.Post) error
	DeleteTagsForPost(ctx context.Context, post *models.Post) error
	DeleteOrphanTags(ctx context.Context) (int, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

// AddTag reuses an existing tag with the exact same name or creates one,
// then attaches the pivot either way. The pivot insert is not checked for a
// pre-existing association.
func (s *tagService) AddTag(ctx context.Context, name string, post *models.Post) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByName(ctx, name)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		tag = &models.Tag{Name: name}
		if err := s.tagRepo.Save(ctx, tag); err != nil {
			return nil, err
		}
	}

	if err := s.tagRepo.Add(ctx, tag, post); err != nil {
		return nil, err
	}

	return tag, nil
}

// RemoveTag deletes the one pivot between the tag and the post. The tag row
// stays even when this was its last post.
func (s *tagService) RemoveTag(ctx context.Context, tag *models.Tag, post *models.Post) error {
	return s.tagRepo.Remove(ctx, tag, post)
}

func (s *tagService) DeleteTagsForPost(ctx context.Context, post *models.Post) error {
	return s.tagRepo.DeleteForPost(ctx, post)
}

// DeleteOrphanTags sweeps tags with no remaining pivots. It is an explicit
// operation: nothing in the pivot lifecycle triggers it automatically.
func (s *tagService) DeleteOrphanTags(ctx context.Context) (int, error) {
	return s.tagRepo.DeleteOrphans(ctx)
}
