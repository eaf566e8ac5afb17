package handlers

import (
	"net/http"

	"photoshare-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ActivityHandler handles activity feed HTTP requests
type ActivityHandler struct {
	activity *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activity *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
	}
}

// GetActivity handles GET /api/v1/users/{user_id}/activity
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		respondText(w, http.StatusBadRequest, services.MsgMissingParameter)
		return
	}

	entries, err := h.activity.GetActivity(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to build activity feed")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}
