package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// peer protocol
	router.Get("/health_check", h.getHealthCheck)
	router.Get("/users/clock_status/{wallet}", h.getClockStatus)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/sync-mode", h.computeSyncMode)
		r.Post("/sync-mode/replica", h.computeReplicaSyncMode)
	})

	if h.metrics != nil {
		router.Handle("/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
