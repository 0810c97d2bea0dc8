package app

import (
	"log"

	"blogpress/internal/config"
	"blogpress/internal/database"
	handlers "blogpress/internal/handler"
	"blogpress/internal/repository"
	"blogpress/internal/service"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Could not connect to the database: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, handlers.NewJSONPresenter())

	return db, repo, services
}
