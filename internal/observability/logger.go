package observability

import (
	"log/slog"

	"github.com/couchcryptid/seismic-site-response/internal/config"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// ServiceName is attached to every log record.
const ServiceName = "seismic-site-response"

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT and
// installs it as the slog default.
func NewLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat).With("service", ServiceName)
}
