package http

import (
	"net/http"

	"github.com/MKhiriev/snapback/internal/utils"
	"github.com/MKhiriev/snapback/models"
)

// getHealthCheck serves GET /health_check. Peers read data.version from it to
// decide whether files hashes can be compared.
func (h *Handler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	data := h.services.AppInfoService.GetHealthCheck(r.Context())
	utils.WriteJSON(w, models.HealthCheckResponse{Data: data}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
