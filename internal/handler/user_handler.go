package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogpress/internal/models"
)

type SaveUserRequest struct {
	Username      string `json:"username" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Tagline       string `json:"tagline"`
	Biography     string `json:"biography"`
	TwitterHandle string `json:"twitterHandle"`
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req SaveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user := &models.User{
		Username:      req.Username,
		Name:          req.Name,
		Tagline:       req.Tagline,
		Biography:     req.Biography,
		TwitterHandle: req.TwitterHandle,
	}

	if err := h.UserRepo.Save(r.Context(), user); err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusCreated)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Resolver.UserByID(r.Context(), mux.Vars(r)["userID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	WriteSuccess(w, user, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Resolver.UserByID(r.Context(), mux.Vars(r)["userID"])
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	if err := h.UserRepo.Delete(r.Context(), user.ID); err != nil {
		WriteDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
