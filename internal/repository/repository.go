package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"blogpress/internal/models"
)

type PostRepository interface {
	GetAllSortedByPublishDate(ctx context.Context, includeDrafts bool) ([]models.Post, error)
	GetAllSortedByPublishDatePaged(ctx context.Context, includeDrafts bool, count, offset int) ([]models.Post, error)
	GetAllCount(ctx context.Context, includeDrafts bool) (int, error)
	GetForAuthorSortedByPublishDate(ctx context.Context, author *models.User, includeDrafts bool, count, offset int) ([]models.Post, error)
	GetCountForAuthor(ctx context.Context, author *models.User) (int, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetByID(ctx context.Context, postID int) (*models.Post, error)
	GetSortedPublishedForTag(ctx context.Context, tag *models.Tag, count, offset int) ([]models.Post, error)
	GetPublishedCountForTag(ctx context.Context, tag *models.Tag) (int, error)
	FindPublishedOrdered(ctx context.Context, searchTerm string, count, offset int) ([]models.Post, error)
	GetPublishedCountForSearchTerm(ctx context.Context, searchTerm string) (int, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, postID int) error
}

type TagRepository interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	GetAllWithPostCount(ctx context.Context) ([]models.TagWithPostCount, error)
	GetForPost(ctx context.Context, post *models.Post) ([]models.Tag, error)
	GetForAllPosts(ctx context.Context) (map[int][]models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	Save(ctx context.Context, tag *models.Tag) error
	DeleteForPost(ctx context.Context, post *models.Post) error
	Remove(ctx context.Context, tag *models.Tag, post *models.Post) error
	Add(ctx context.Context, tag *models.Tag, post *models.Post) error
	DeleteOrphans(ctx context.Context) (int, error)
}

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetAllWithPostCount(ctx context.Context) ([]models.UserWithPostCount, error)
	GetByID(ctx context.Context, userID int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int) error
	Count(ctx context.Context) (int, error)
}

type Repository struct {
	Post PostRepository
	Tag  TagRepository
	User UserRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post: NewPostRepository(db),
		Tag:  NewTagRepository(db),
		User: NewUserRepository(db),
	}
}
