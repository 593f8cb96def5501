package provider

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the provider router
func (h *Handler) Routes(authMiddleware, providerOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	// Public directory
	r.Get("/", h.List)
	r.Get("/emergency", h.Emergency)

	// Owner routes; "me" before "{slug}" so it never matches as a slug
	r.Route("/me", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(providerOnly)

		r.Post("/", h.Create)
		r.Get("/", h.GetMine)
		r.Patch("/", h.Update)
		r.Post("/submit", h.Submit)
		r.Get("/completeness", h.Completeness)
		r.Put("/wizard/{step}", h.WizardStep)
		r.Put("/hours", h.SetHours)
		r.Get("/hours", h.GetHours)
		r.Post("/areas", h.AddServiceArea)
		r.Get("/areas", h.ListServiceAreas)
		r.Delete("/areas/{id}", h.DeleteServiceArea)
	})

	r.Get("/{slug}", h.GetBySlug)

	return r
}
