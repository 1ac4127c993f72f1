package http

import (
	"net/http"

	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/internal/utils"
	"github.com/MKhiriev/krooster-proxy/models"
)

func (h *Handler) kroosterAccounts(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	forwarded, err := h.services.GatewayService.LookupAccountByUsername(r.Context(), username)
	h.relay(w, r, forwarded, err)
}

func (h *Handler) kroosterOperators(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")

	forwarded, err := h.services.GatewayService.LookupOperatorsByUserID(r.Context(), userID)
	h.relay(w, r, forwarded, err)
}

func (h *Handler) sheet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	forwarded, err := h.services.GatewayService.FetchSheetData(r.Context(), query.Get("id"), query.Get("gid"))
	h.relay(w, r, forwarded, err)
}

// relay writes the upstream reply as is, or the error envelope when the
// outbound call could not be completed.
func (h *Handler) relay(w http.ResponseWriter, r *http.Request, forwarded models.Forwarded, err error) {
	log := logger.FromRequest(r)

	if err != nil {
		log.Err(err).Msg("forwarding failed")
		if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, statusFromError(err)); writeErr != nil {
			log.Err(writeErr).Msg("error writing error response")
		}
		return
	}

	if forwarded.ContentType != "" {
		w.Header().Set("Content-Type", forwarded.ContentType)
	} else {
		// a nil value stops net/http from sniffing a content type
		w.Header()["Content-Type"] = nil
	}

	w.WriteHeader(forwarded.Status)
	if len(forwarded.Body) == 0 {
		return
	}
	if _, err := w.Write(forwarded.Body); err != nil {
		log.Err(err).Msg("error writing upstream body")
	}
}
