package adapter

import (
	"strings"

	"github.com/MKhiriev/krooster-proxy/internal/logger"
)

// restyLogger routes resty's internal diagnostics into the zerolog logger.
type restyLogger struct {
	logger *logger.Logger
}

func newRestyLogger(l *logger.Logger) *restyLogger {
	return &restyLogger{logger: l}
}

func (r *restyLogger) Errorf(format string, v ...interface{}) {
	r.logger.Error().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r *restyLogger) Warnf(format string, v ...interface{}) {
	r.logger.Warn().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}

func (r *restyLogger) Debugf(format string, v ...interface{}) {
	r.logger.Debug().Str("component", "resty").Msgf(strings.TrimSpace(format), v...)
}
