package handlers

import (
	"encoding/json"
	"net/http"

	"photoshare-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// LikeHandler handles like-related HTTP requests
type LikeHandler struct {
	likes *services.LikeService
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{
		likes: likes,
	}
}

// LikeRequest identifies the photo being liked or unliked.
type LikeRequest struct {
	PhotoID string `json:"photo_id"`
}

// Like handles POST /api/v1/users/{user_id}/like
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.likes.Like(r.Context(), userID, req.PhotoID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("photo_id", req.PhotoID).
			Msg("Failed to like photo")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("photo_id", req.PhotoID).
		Msg("Photo liked")

	respondJSON(w, http.StatusOK, map[string]string{"photo_id": req.PhotoID})
}

// Unlike handles POST /api/v1/users/{user_id}/unlike
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.likes.Unlike(r.Context(), userID, req.PhotoID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("photo_id", req.PhotoID).
			Msg("Failed to unlike photo")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("photo_id", req.PhotoID).
		Msg("Photo unliked")

	respondJSON(w, http.StatusOK, map[string]string{"photo_id": req.PhotoID})
}
