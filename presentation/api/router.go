package api

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"netprio/application/logging"
)

// NewRouter wires the API routes. metrics may be nil.
func NewRouter(core Core, metrics http.Handler, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(Recovery(logger))
	r.Use(RequestLogger(logger))
	r.Use(JSONContentType)

	h := NewHandler(core)
	var mu sync.Mutex

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(Serialize(&mu))

		r.Get("/adapters", h.GetAdapters)
		r.Post("/adapters/move", h.MoveAdapter)
		r.Post("/adapters/commit", h.Commit)
	})

	r.Get("/healthz", h.Health)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	return r
}
