// internal/app/features/resources/routes.go
package resources

import "github.com/go-chi/chi/v5"

// Routes returns the router for the resource endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Delete("/{id}", h.ServeDelete)
	return r
}
