package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-session/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}, http.StatusOK)
}
