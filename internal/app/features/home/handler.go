// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/go-chi/render"
)

// WelcomeMessage is the banner returned at the API root.
const WelcomeMessage = "Bassa Soufian - Cours Particuliers API"

// Handler serves the API root banner.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ServeRoot handles GET /api/.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"message": WelcomeMessage})
}
