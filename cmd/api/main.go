package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"blogpress/cmd/app"
	"blogpress/internal/config"
	handlers "blogpress/internal/handler"
	"blogpress/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := newRouter(handler, cfg)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newRouter(handler *handlers.Handlers, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/", handler.Index).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	router.HandleFunc("/posts", handler.PostsRedirect).Methods(http.MethodGet)
	router.HandleFunc("/posts/{slug}", handler.Post).Methods(http.MethodGet)
	router.HandleFunc("/search", handler.Search).Methods(http.MethodGet)

	if cfg.EnableTagPages {
		router.HandleFunc("/tags", handler.AllTags).Methods(http.MethodGet)
		router.HandleFunc("/tags/{name}", handler.Tag).Methods(http.MethodGet)
	}

	if cfg.EnableAuthorPages {
		router.HandleFunc("/authors", handler.AllAuthors).Methods(http.MethodGet)
		router.HandleFunc("/authors/{username}", handler.Author).Methods(http.MethodGet)
	}

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postID}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{postID}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{postID}/tags", handler.AddTagToPost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{postID}/tags/{name}", handler.RemoveTagFromPost).Methods(http.MethodDelete)
	api.HandleFunc("/tags/orphans", handler.DeleteOrphanTags).Methods(http.MethodDelete)
	api.HandleFunc("/users", handler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{userID}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{userID}", handler.DeleteUser).Methods(http.MethodDelete)

	return router
}
