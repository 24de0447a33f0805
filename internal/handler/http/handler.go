package http

import (
	"net/http"

	"github.com/MKhiriev/snapback/internal/logger"
	"github.com/MKhiriev/snapback/internal/service"
)

type Handler struct {
	services *service.Services

	// metrics serves GET /metrics. Nil leaves the route unregistered.
	metrics http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics http.Handler, logger *logger.Logger) *Handler {
	logger.Info().Bool("metrics", metrics != nil).Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}
