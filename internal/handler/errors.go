package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"blogpress/internal/repository"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteDomainError maps the error taxonomy onto HTTP statuses. Consistency
// violations and dependency failures are logged with detail but surface as a
// generic 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		WriteError(w, "invalid identifier", http.StatusBadRequest)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "not found", http.StatusNotFound)
	default:
		log.Printf("request failed: %v", err)
		WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
