package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogpress/internal/models"
)

type SavePostRequest struct {
	Slug      string `json:"slug" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Contents  string `json:"contents"`
	Published bool   `json:"published"`
	AuthorID  int    `json:"authorId" validate:"required,gt=0"`
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post := &models.Post{
		Slug:      req.Slug,
		Title:     req.Title,
		Contents:  req.Contents,
		Published: req.Published,
		AuthorID:  req.AuthorID,
	}

	if err := h.PostRepo.Save(r.Context(), post); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Resolver.PostByID(r.Context(), mux.Vars(r)["postID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	var req SavePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post.Slug = req.Slug
	post.Title = req.Title
	post.Contents = req.Contents
	post.Published = req.Published
	post.AuthorID = req.AuthorID

	if err := h.PostRepo.Save(r.Context(), post); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

// DeletePost drops the post's pivots first, then the post row. Tags left
// without posts stay until the orphan sweep runs.
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Resolver.PostByID(r.Context(), mux.Vars(r)["postID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.TagService.DeleteTagsForPost(r.Context(), post); err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.PostRepo.Delete(r.Context(), post.ID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
