package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blogpress/internal/models"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) GetAllSortedByPublishDate(ctx context.Context, includeDrafts bool) ([]models.Post, error) {
	args := m.Called(ctx, includeDrafts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAllSortedByPublishDatePaged(ctx context.Context, includeDrafts bool, count, offset int) ([]models.Post, error) {
	args := m.Called(ctx, includeDrafts, count, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAllCount(ctx context.Context, includeDrafts bool) (int, error) {
	args := m.Called(ctx, includeDrafts)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) GetForAuthorSortedByPublishDate(ctx context.Context, author *models.User, includeDrafts bool, count, offset int) ([]models.Post, error) {
	args := m.Called(ctx, author, includeDrafts, count, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetCountForAuthor(ctx context.Context, author *models.User) (int, error) {
	args := m.Called(ctx, author)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetSortedPublishedForTag(ctx context.Context, tag *models.Tag, count, offset int) ([]models.Post, error) {
	args := m.Called(ctx, tag, count, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPublishedCountForTag(ctx context.Context, tag *models.Tag) (int, error) {
	args := m.Called(ctx, tag)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) FindPublishedOrdered(ctx context.Context, searchTerm string, count, offset int) ([]models.Post, error) {
	args := m.Called(ctx, searchTerm, count, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPublishedCountForSearchTerm(ctx context.Context, searchTerm string) (int, error) {
	args := m.Called(ctx, searchTerm)
	return args.Int(0), args.Error(1)
}

func (m *MockPostRepository) Save(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID int) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetAllWithPostCount(ctx context.Context) ([]models.TagWithPostCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagWithPostCount), args.Error(1)
}

func (m *MockTagRepository) GetForPost(ctx context.Context, post *models.Post) ([]models.Tag, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetForAllPosts(ctx context.Context) (map[int][]models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int][]models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Save(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteForPost(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockTagRepository) Remove(ctx context.Context, tag *models.Tag, post *models.Post) error {
	args := m.Called(ctx, tag, post)
	return args.Error(0)
}

func (m *MockTagRepository) Add(ctx context.Context, tag *models.Tag, post *models.Post) error {
	args := m.Called(ctx, tag, post)
	return args.Error(0)
}

func (m *MockTagRepository) DeleteOrphans(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetAllWithPostCount(ctx context.Context) ([]models.UserWithPostCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserWithPostCount), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID int) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
