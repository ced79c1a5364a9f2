package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/service"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/utils"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrInsufficientRole, http.StatusForbidden},
	{ErrInvalidQueryParam, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrRefreshTokenInvalid, http.StatusUnauthorized},

	{store.ErrNoUserWasFound, http.StatusUnauthorized},
	{store.ErrLoginAlreadyExists, http.StatusConflict},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes the matching status. Messages of
// internal errors are not exposed.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, err.Error(), status)
}
