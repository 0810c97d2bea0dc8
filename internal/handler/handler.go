package handlers

import (
	"github.com/go-playground/validator/v10"

	"blogpress/internal/config"
	"blogpress/internal/repository"
	"blogpress/internal/resolver"
	"blogpress/internal/service"
)

type Handlers struct {
	BlogService service.BlogService
	TagService  service.TagService
	PostRepo    repository.PostRepository
	UserRepo    repository.UserRepository
	Resolver    *resolver.Resolver
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{
		BlogService: services.Blog,
		TagService:  services.Tag,
		PostRepo:    repo.Post,
		UserRepo:    repo.User,
		Resolver:    resolver.New(repo.Post, repo.Tag, repo.User),
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}
