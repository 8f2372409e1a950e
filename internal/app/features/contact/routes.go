// internal/app/features/contact/routes.go
package contact

import "github.com/go-chi/chi/v5"

// Routes returns the router for the contact endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	return r
}
