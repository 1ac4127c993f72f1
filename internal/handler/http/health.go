package http

import (
	"net/http"

	"github.com/MKhiriev/krooster-proxy/internal/utils"
	"github.com/MKhiriev/krooster-proxy/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
