package service

import (
	"context"

	"github.com/MKhiriev/krooster-proxy/models"
)

// GatewayService forwards each inbound lookup to its upstream. Every method
// performs exactly one outbound call and returns the upstream reply as is;
// the error, when non-nil, matches adapter.ErrUpstreamTransport.
type GatewayService interface {
	LookupAccountByUsername(ctx context.Context, username string) (models.Forwarded, error)
	LookupOperatorsByUserID(ctx context.Context, userID string) (models.Forwarded, error)
	FetchSheetData(ctx context.Context, id, gid string) (models.Forwarded, error)
}

// GatewayServiceWrapper defines middleware composition for GatewayService.
// Implementations wrap an existing GatewayService to add behavior such as
// metrics.
type GatewayServiceWrapper interface {
	Wrap(GatewayService) GatewayService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
