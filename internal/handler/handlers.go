package handler

import (
	stdhttp "net/http"

	"github.com/MKhiriev/snapback/internal/config"
	"github.com/MKhiriev/snapback/internal/handler/http"
	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. metrics may be
// nil, in which case /metrics is not served.
func NewHandlers(services *service.Services, metrics stdhttp.Handler, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, metrics, logger),
	}, nil
}
