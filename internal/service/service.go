package service

import (
	"blogpress/internal/config"
	"blogpress/internal/repository"
)

type Service struct {
	Blog BlogService
	Tag  TagService
}

func NewService(repo *repository.Repository, cfg *config.Config, presenter Presenter) *Service {
	return &Service{
		Blog: NewBlogService(repo.Post, repo.Tag, repo.User, presenter, cfg.PostsPerPage),
		Tag:  NewTagService(repo.Tag),
	}
}
