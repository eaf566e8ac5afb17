package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/services"
	"photoshare-backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accounts *services.AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
	}
}

// ListUsers handles GET /api/v1/users
func (h *AccountHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.accounts.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/{user_id}. The id may also arrive
// as a query parameter; the path value wins.
func (h *AccountHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		userID = r.URL.Query().Get("user_id")
	}
	if userID == "" {
		respondText(w, http.StatusBadRequest, services.MsgMissingParameter)
		return
	}

	user, err := h.accounts.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to get user")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// CreateUser handles POST /api/v1/users
func (h *AccountHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID, err := h.accounts.CreateUser(r.Context(), &user)
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to create user")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", userID).Msg("User created")
	respondJSON(w, http.StatusOK, map[string]string{"user_id": userID})
}

// SignInRequest carries sign-in credentials.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn handles POST /api/v1/users/signin. Failure is a bare 401.
func (h *AccountHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondText(w, http.StatusInternalServerError, err.Error())
		return
	}

	userID, err := h.accounts.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrUnauthorized) {
			log.Error().Err(err).Msg("Failed to sign in")
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"user_id": userID})
}

// DeleteUser handles DELETE /api/v1/users/{user_id}
func (h *AccountHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		respondText(w, http.StatusBadRequest, services.MsgMissingParameter)
		return
	}

	if err := h.accounts.DeleteUser(r.Context(), userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to delete user")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", userID).Msg("User deleted")
	w.WriteHeader(http.StatusOK)
}
