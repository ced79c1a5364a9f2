package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.SignIn(r.Context(), credentials)
	if err != nil {
		h.writeServiceError(w, r, err, "sign in failed")
		return
	}

	log.Debug().Int64("id", result.User.UserID).Msg("user successfully signed in")
	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.writeServiceError(w, r, err, "refresh failed")
		return
	}

	utils.WriteJSON(w, pair, http.StatusOK)
}

// signOut revokes the refresh token in the body, if any.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.SignOut(r.Context(), req.RefreshToken); err != nil {
		h.writeServiceError(w, r, err, "sign out failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	user, err := h.services.AuthService.GetUser(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, r, err, "current user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
