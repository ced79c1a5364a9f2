package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-session/models"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		message string
		status  int
	}{
		{name: "unauthorized", message: "invalid refresh token", status: http.StatusUnauthorized},
		{name: "forbidden", message: "insufficient role", status: http.StatusForbidden},
		{name: "bad request", message: "page must be positive and within range", status: http.StatusBadRequest},
		{name: "not found", message: "not found", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			WriteError(w, tt.message, tt.status)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, w.Body.String())

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestWriteJSON_ItemsPage(t *testing.T) {
	w := httptest.NewRecorder()
	page := models.Page[models.Item]{
		Data:  []models.Item{{ID: 7, Name: "Cà phê", Slug: "ca-phe", Price: 25000}},
		Total: 1,
		Page:  1,
		Limit: 10,
	}

	n, err := WriteJSON(w, page, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Page[models.Item]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Data, 1)
	assert.Equal(t, "ca-phe", got.Data[0].Slug)
}

// Пустая страница отдаётся как [], не null.
func TestWriteJSON_EmptyPageData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Page[models.Item]{Data: []models.Item{}, Page: 3, Limit: 10}, http.StatusOK)

	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["data"]))
}

func TestWriteJSON_UnmarshalableData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
