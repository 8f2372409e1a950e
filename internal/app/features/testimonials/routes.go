// internal/app/features/testimonials/routes.go
package testimonials

import "github.com/go-chi/chi/v5"

// Routes returns the router for the testimonial endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
