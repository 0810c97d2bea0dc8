package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"blogpress/internal/models"
	"blogpress/internal/pagination"
	"blogpress/internal/repository"
)

// BlogService assembles the aggregate payload for each public view. Every
// independent repository query of a view is issued concurrently; one failed
// query aborts the whole aggregate.
type BlogService interface {
	IndexView(ctx context.Context, page int, query string) ([]byte, error)
	PostView(ctx context.Context, post *models.Post) ([]byte, error)
	TagView(ctx context.Context, tag *models.Tag, page int, query string) ([]byte, error)
	AuthorView(ctx context.Context, author *models.User, page int, query string) ([]byte, error)
	AllTagsView(ctx context.Context) ([]byte, error)
	AllAuthorsView(ctx context.Context) ([]byte, error)
	SearchView(ctx context.Context, searchTerm string, page int, query string) ([]byte, error)
}

type blogService struct {
	postRepo  repository.PostRepository
	tagRepo   repository.TagRepository
	userRepo  repository.UserRepository
	presenter Presenter
	pageSize  int
}

func NewBlogService(postRepo repository.PostRepository, tagRepo repository.TagRepository, userRepo repository.UserRepository, presenter Presenter, pageSize int) BlogService {
	return &blogService{
		postRepo:  postRepo,
		tagRepo:   tagRepo,
		userRepo:  userRepo,
		presenter: presenter,
		pageSize:  pageSize,
	}
}

func (s *blogService) IndexView(ctx context.Context, page int, query string) ([]byte, error) {
	offset := (page - 1) * s.pageSize

	var (
		posts        []models.Post
		tags         []models.Tag
		users        []models.User
		totalPosts   int
		tagsForPosts map[int][]models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.GetAllSortedByPublishDatePaged(gctx, false, s.pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = s.tagRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalPosts, err = s.postRepo.GetAllCount(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		tagsForPosts, err = s.tagRepo.GetForAllPosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.presenter.IndexView(ctx, IndexPayload{
		Posts:        posts,
		Tags:         tags,
		Authors:      users,
		TotalPosts:   totalPosts,
		TagsForPosts: tagsForPosts,
		Pagination:   pagination.Paginate(page, totalPosts, s.pageSize, query),
	})
}

func (s *blogService) PostView(ctx context.Context, post *models.Post) ([]byte, error) {
	var (
		author *models.User
		tags   []models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = s.userRepo.GetByID(gctx, post.AuthorID)
		if errors.Is(err, repository.ErrNotFound) {
			// A dangling author reference is bad data, not a missing page.
			return fmt.Errorf("post %d references missing author %d: %w", post.ID, post.AuthorID, repository.ErrConsistency)
		}
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = s.tagRepo.GetForPost(gctx, post)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.presenter.PostView(ctx, PostPayload{
		Post:   *post,
		Author: *author,
		Tags:   tags,
	})
}

func (s *blogService) TagView(ctx context.Context, tag *models.Tag, page int, query string) ([]byte, error) {
	offset := (page - 1) * s.pageSize

	var (
		posts      []models.Post
		totalPosts int
		users      []models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.GetSortedPublishedForTag(gctx, tag, s.pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		totalPosts, err = s.postRepo.GetPublishedCountForTag(gctx, tag)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.presenter.TagView(ctx, TagPayload{
		Tag:        *tag,
		Posts:      posts,
		Authors:    users,
		TotalPosts: totalPosts,
		Pagination: pagination.Paginate(page, totalPosts, s.pageSize, query),
	})
}

func (s *blogService) AuthorView(ctx context.Context, author *models.User, page int, query string) ([]byte, error) {
	offset := (page - 1) * s.pageSize

	var (
		posts        []models.Post
		postCount    int
		tagsForPosts map[int][]models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.GetForAuthorSortedByPublishDate(gctx, author, false, s.pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		postCount, err = s.postRepo.GetCountForAuthor(gctx, author)
		return err
	})
	g.Go(func() error {
		var err error
		tagsForPosts, err = s.tagRepo.GetForAllPosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.presenter.AuthorView(ctx, AuthorPayload{
		Author:       *author,
		Posts:        posts,
		PostCount:    postCount,
		TagsForPosts: tagsForPosts,
		Pagination:   pagination.Paginate(page, postCount, s.pageSize, query),
	})
}

func (s *blogService) AllTagsView(ctx context.Context) ([]byte, error) {
	tagsWithCounts, err := s.tagRepo.GetAllWithPostCount(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]models.Tag, 0, len(tagsWithCounts))
	postCounts := make(map[int]int, len(tagsWithCounts))
	for _, tc := range tagsWithCounts {
		if tc.ID == 0 {
			return nil, fmt.Errorf("tag %q has no assigned id: %w", tc.Name, repository.ErrConsistency)
		}
		tags = append(tags, tc.Tag)
		postCounts[tc.ID] = tc.PostCount
	}

	return s.presenter.AllTagsView(ctx, AllTagsPayload{
		Tags:       tags,
		PostCounts: postCounts,
	})
}

func (s *blogService) AllAuthorsView(ctx context.Context) ([]byte, error) {
	usersWithCounts, err := s.userRepo.GetAllWithPostCount(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(usersWithCounts))
	postCounts := make(map[int]int, len(usersWithCounts))
	for _, uc := range usersWithCounts {
		if uc.ID == 0 {
			return nil, fmt.Errorf("user %q has no assigned id: %w", uc.Username, repository.ErrConsistency)
		}
		users = append(users, uc.User)
		postCounts[uc.ID] = uc.PostCount
	}

	return s.presenter.AllAuthorsView(ctx, AllAuthorsPayload{
		Authors:    users,
		PostCounts: postCounts,
	})
}

func (s *blogService) SearchView(ctx context.Context, searchTerm string, page int, query string) ([]byte, error) {
	searchTerm = strings.TrimSpace(searchTerm)

	// An empty term never reaches the repositories.
	if searchTerm == "" {
		return s.presenter.SearchView(ctx, SearchPayload{
			SearchTerm:   "",
			Posts:        []models.Post{},
			Authors:      []models.User{},
			TotalResults: 0,
			TagsForPosts: map[int][]models.Tag{},
			Pagination:   pagination.Paginate(page, 0, s.pageSize, query),
		})
	}

	offset := (page - 1) * s.pageSize

	var (
		posts        []models.Post
		totalResults int
		users        []models.User
		tagsForPosts map[int][]models.Tag
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.FindPublishedOrdered(gctx, searchTerm, s.pageSize, offset)
		return err
	})
	g.Go(func() error {
		var err error
		totalResults, err = s.postRepo.GetPublishedCountForSearchTerm(gctx, searchTerm)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tagsForPosts, err = s.tagRepo.GetForAllPosts(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.presenter.SearchView(ctx, SearchPayload{
		SearchTerm:   searchTerm,
		Posts:        posts,
		Authors:      users,
		TotalResults: totalResults,
		TagsForPosts: tagsForPosts,
		Pagination:   pagination.Paginate(page, totalResults, s.pageSize, query),
	})
}
