package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"photoshare-backend/internal/services"
)

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// respondText writes a plain-text response body. Domain failures report
// their reason as text, matching the API contract.
func respondText(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)
	w.Write([]byte(message))
}

// respondServiceError maps a domain error to its status code. Every
// recognized condition has a fixed mapping; anything unrecognized is an
// internal failure reported with the error text as body.
func respondServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		conflictErr   *services.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		respondText(w, http.StatusBadRequest, validationErr.Reason)
	case errors.As(err, &notFoundErr):
		respondText(w, http.StatusBadRequest, notFoundErr.Reason)
	case errors.As(err, &conflictErr):
		respondText(w, http.StatusBadRequest, conflictErr.Reason)
	case errors.Is(err, services.ErrUnauthorized):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		respondText(w, http.StatusInternalServerError, err.Error())
	}
}
