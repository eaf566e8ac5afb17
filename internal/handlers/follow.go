package handlers

import (
	"encoding/json"
	"net/http"

	"photoshare-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// FollowHandler handles follow-related HTTP requests
type FollowHandler struct {
	follows *services.FollowService
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{
		follows: follows,
	}
}

// FollowRequest identifies the user on the other end of the edge.
type FollowRequest struct {
	OtherUserID string `json:"other_user_id"`
}

// Follow handles POST /api/v1/users/{user_id}/follow
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.follows.Follow(r.Context(), userID, req.OtherUserID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("other_user_id", req.OtherUserID).
			Msg("Failed to follow")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("other_user_id", req.OtherUserID).
		Msg("Follow added")

	respondJSON(w, http.StatusOK, map[string]string{"other_user_id": req.OtherUserID})
}

// Unfollow handles POST /api/v1/users/{user_id}/unfollow
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	var req FollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.follows.Unfollow(r.Context(), userID, req.OtherUserID); err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("other_user_id", req.OtherUserID).
			Msg("Failed to unfollow")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("other_user_id", req.OtherUserID).
		Msg("Follow removed")

	respondJSON(w, http.StatusOK, map[string]string{"other_user_id": req.OtherUserID})
}
