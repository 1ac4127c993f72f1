package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/krooster-proxy/internal/adapter"
)

var errorStatusMap = map[error]int{
	adapter.ErrUpstreamTransport: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
