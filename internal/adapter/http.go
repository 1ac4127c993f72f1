package adapter

import (
	"context"

	"github.com/MKhiriev/krooster-proxy/internal/config"
	"github.com/MKhiriev/krooster-proxy/internal/logger"
	"github.com/MKhiriev/krooster-proxy/internal/utils"
	"github.com/MKhiriev/krooster-proxy/models"
)

type httpForwarder struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPForwarder constructs the resty implementation of [Forwarder].
// The client has no base URL since every [Request] carries an absolute URL,
// and its timeout is taken from cfg.RequestTimeout (zero means none).
func NewHTTPForwarder(cfg config.Upstream, logger *logger.Logger) Forwarder {
	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetLogger(newRestyLogger(logger))

	return &httpForwarder{client: client, logger: logger}
}

// Forward implements [Forwarder].
func (h *httpForwarder) Forward(ctx context.Context, req Request) (models.Forwarded, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		Get(req.URL)
	if err != nil {
		return models.Forwarded{}, &TransportError{Route: req.Route, Err: err}
	}

	return models.Forwarded{
		Status:      resp.StatusCode(),
		Body:        resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
	}, nil
}
