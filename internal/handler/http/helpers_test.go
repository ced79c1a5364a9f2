package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/service"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/internal/utils"
	"github.com/MKhiriev/go-rest-session/models"
)

const (
	testSignKey  = "handler-test-key"
	testIssuer   = "handler-test"
	testAdmin    = "admin"
	testPassword = "admin-pass"
)

func newTestServerConfig() *config.ServerConfig {
	return &config.ServerConfig{Auth: config.Auth{
		TokenSignKey:         testSignKey,
		TokenIssuer:          testIssuer,
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: time.Hour,
		AdminLogin:           testAdmin,
		AdminPassword:        testPassword,
	}}
}

// newTestRouter returns the full router over seeded in-memory services.
func newTestRouter(t *testing.T) (http.Handler, *service.Services) {
	t.Helper()

	cfg := newTestServerConfig()
	services, err := service.NewServices(store.NewServerStorages(), cfg, "test-version", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, services.Seed(context.Background(), cfg.Auth))

	return NewHandler(services, logger.Nop()).Init(5 * time.Second), services
}

func doJSON(t *testing.T, h http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", utils.BearerHeader(token))
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func signInAdmin(t *testing.T, h http.Handler) models.SignInResult {
	t.Helper()

	rr := doJSON(t, h, http.MethodPost, "/api/auth/login", "", models.Credentials{Login: testAdmin, Password: testPassword})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	return decodeBody[models.SignInResult](t, rr)
}
