package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

// auth enforces bearer authentication. The validated token's user id and
// role are stored in the request context with [utils.WithUser].
//
// Every rejection is a 401, which is what makes clients refresh.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeServiceError(w, r, ErrEmptyAuthorizationHeader, "request rejected")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeServiceError(w, r, err, "request rejected")
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			h.writeServiceError(w, r, err, "access token rejected")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(r.Context(), token)))
	})
}

// requireRole rejects requests of users holding none of roles with 403.
// It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := utils.GetUserRoleFromContext(r.Context())
			if !(models.User{Role: role}).HasRole(roles...) {
				logger.FromRequest(r).Warn().Str("role", string(role)).Msg("insufficient role")
				utils.WriteError(w, ErrInsufficientRole.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
