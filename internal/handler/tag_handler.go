package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type AddTagRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *Handlers) AddTagToPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.Resolver.PostByID(r.Context(), mux.Vars(r)["postID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	var req AddTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	tag, err := h.TagService.AddTag(r.Context(), req.Name, post)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, tag, http.StatusCreated)
}

func (h *Handlers) RemoveTagFromPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	post, err := h.Resolver.PostByID(r.Context(), vars["postID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	tag, err := h.Resolver.Tag(r.Context(), vars["name"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.TagService.RemoveTag(r.Context(), tag, post); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteOrphanTags(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.TagService.DeleteOrphanTags(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, map[string]int{"deleted": deleted}, http.StatusOK)
}
