// internal/app/features/uploads/routes.go
package uploads

import "github.com/go-chi/chi/v5"

// UploadRoutes returns the router for the upload endpoint, mounted under
// /api/upload.
func UploadRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeUpload)
	return r
}

// FileRoutes returns the router for serving stored files, mounted under
// /api/files.
func FileRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{filename}", h.ServeFile)
	return r
}
