package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware() {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.With(GenerationLimit(GenerationConcurrency)).Post("/preview", handler.PreviewCave)
		r.With(GenerationLimit(GenerationConcurrency)).Post("/preview/ascii", handler.PreviewCaveASCII)

		r.Route("/caves", func(r chi.Router) {
			r.With(GenerationLimit(GenerationConcurrency)).Post("/", handler.CreateCave)
			r.Get("/", handler.ListCaves)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetCave)
				r.Delete("/", handler.DeleteCave)
				r.Get("/ascii", handler.GetCaveASCII)
				r.With(GenerationLimit(GenerationConcurrency)).Get("/verify", handler.VerifyCave)
			})
		})
	})

	return r
}
