package service

import (
	"context"

	"blogpress/internal/models"
	"blogpress/internal/pagination"
)

// Presenter renders an assembled aggregate payload. The orchestrator never
// looks inside the rendered output, it only hands it back to the transport.
type Presenter interface {
	IndexView(ctx context.Context, payload IndexPayload) ([]byte, error)
	PostView(ctx context.Context, payload PostPayload) ([]byte, error)
	TagView(ctx context.Context, payload TagPayload) ([]byte, error)
	AuthorView(ctx context.Context, payload AuthorPayload) ([]byte, error)
	AllTagsView(ctx context.Context, payload AllTagsPayload) ([]byte, error)
	AllAuthorsView(ctx context.Context, payload AllAuthorsPayload) ([]byte, error)
	SearchView(ctx context.Context, payload SearchPayload) ([]byte, error)
}

type IndexPayload struct {
	Posts        []models.Post                    `json:"posts"`
	Tags         []models.Tag                     `json:"tags"`
	Authors      []models.User                    `json:"authors"`
	TotalPosts   int                              `json:"totalPosts"`
	TagsForPosts map[int][]models.Tag             `json:"tagsForPosts"`
	Pagination   pagination.PaginationInformation `json:"pagination"`
}

type PostPayload struct {
	Post   models.Post  `json:"post"`
	Author models.User  `json:"author"`
	Tags   []models.Tag `json:"tags"`
}

type TagPayload struct {
	Tag        models.Tag                       `json:"tag"`
	Posts      []models.Post                    `json:"posts"`
	Authors    []models.User                    `json:"authors"`
	TotalPosts int                              `json:"totalPosts"`
	Pagination pagination.PaginationInformation `json:"pagination"`
}

type AuthorPayload struct {
	Author       models.User                      `json:"author"`
	Posts        []models.Post                    `json:"posts"`
	PostCount    int                              `json:"postCount"`
	TagsForPosts map[int][]models.Tag             `json:"tagsForPosts"`
	Pagination   pagination.PaginationInformation `json:"pagination"`
}

type AllTagsPayload struct {
	Tags       []models.Tag `json:"tags"`
	PostCounts map[int]int  `json:"postCounts"`
}

type AllAuthorsPayload struct {
	Authors    []models.User `json:"authors"`
	PostCounts map[int]int   `json:"postCounts"`
}

type SearchPayload struct {
	SearchTerm   string                           `json:"searchTerm"`
	Posts        []models.Post                    `json:"posts"`
	Authors      []models.User                    `json:"authors"`
	TotalResults int                              `json:"totalResults"`
	TagsForPosts map[int][]models.Tag             `json:"tagsForPosts"`
	Pagination   pagination.PaginationInformation `json:"pagination"`
}
