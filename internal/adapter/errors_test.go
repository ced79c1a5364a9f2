package adapter

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantErr  error
		wantBody string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request", status: http.StatusBadRequest, body: "bad\n", wantErr: ErrBadRequest, wantBody: "bad"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "teapot", status: http.StatusTeapot, wantBody: "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := resty.New().R().Get(server.URL)
			require.NoError(t, err)

			mapped := mapHTTPError(resp)
			if tt.status < http.StatusMultipleChoices {
				assert.NoError(t, mapped)
				return
			}

			var httpErr *HTTPError
			require.ErrorAs(t, mapped, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.wantBody, httpErr.Body)
			if tt.wantErr != nil {
				assert.ErrorIs(t, mapped, tt.wantErr)
			} else {
				assert.Nil(t, errors.Unwrap(mapped))
			}
		})
	}
}

func TestHTTPError_Error(t *testing.T) {
	assert.Equal(t, "not found", (&HTTPError{StatusCode: 404, Err: ErrNotFound}).Error())
	assert.Equal(t, "not found: no item", (&HTTPError{StatusCode: 404, Body: "no item", Err: ErrNotFound}).Error())
	assert.Equal(t, "http 418: short", (&HTTPError{StatusCode: 418, Body: "short"}).Error())
}

func TestTransportError(t *testing.T) {
	err := &TransportError{Method: http.MethodGet, Path: "/api/items", Err: errors.New("connection refused")}

	assert.Equal(t, "GET /api/items: connection refused", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "connection refused")
}

func TestPrepare(t *testing.T) {
	header := http.Header{"X-Trace": []string{"1"}}
	p, err := prepare(Request{Path: "/x", Header: header}, map[string]string{"page": "1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, p.Method)
	assert.True(t, p.canReplay())
	assert.False(t, p.retried().canReplay())
	assert.Equal(t, 0, p.attempt)

	p.Header.Set("X-Trace", "2")
	assert.Equal(t, "1", header.Get("X-Trace"))

	disabled, err := prepare(Request{DisableAutoRefresh: true}, nil)
	require.NoError(t, err)
	assert.False(t, disabled.canReplay())
}
