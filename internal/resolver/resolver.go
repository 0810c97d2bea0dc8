// Package resolver turns raw route parameters into entities before the view
// logic runs. A malformed id fails as an invalid identifier, a well-formed
// key with no row fails as not found.
package resolver

import (
	"context"
	"fmt"
	"strconv"

	"blogpress/internal/models"
	"blogpress/internal/repository"
)

type Resolver struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
	userRepo repository.UserRepository
}

func New(postRepo repository.PostRepository, tagRepo repository.TagRepository, userRepo repository.UserRepository) *Resolver {
	return &Resolver{
		postRepo: postRepo,
		tagRepo:  tagRepo,
		userRepo: userRepo,
	}
}

func (r *Resolver) PostByID(ctx context.Context, parameter string) (*models.Post, error) {
	postID, err := strconv.Atoi(parameter)
	if err != nil || postID <= 0 {
		return nil, fmt.Errorf("post id %q: %w", parameter, repository.ErrInvalidID)
	}

	return r.postRepo.GetByID(ctx, postID)
}

func (r *Resolver) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.postRepo.GetBySlug(ctx, slug)
}

// Tag treats the parameter as an opaque lookup key, matched byte-exact
// against the tag name.
func (r *Resolver) Tag(ctx context.Context, parameter string) (*models.Tag, error) {
	return r.tagRepo.GetByName(ctx, parameter)
}

func (r *Resolver) UserByID(ctx context.Context, parameter string) (*models.User, error) {
	userID, err := strconv.Atoi(parameter)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("user id %q: %w", parameter, repository.ErrInvalidID)
	}

	return r.userRepo.GetByID(ctx, userID)
}

func (r *Resolver) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.userRepo.GetByUsername(ctx, username)
}
