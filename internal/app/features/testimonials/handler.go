// internal/app/features/testimonials/handler.go
package testimonials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	testimonialstore "github.com/sbassa/tutorhub/internal/app/store/testimonials"
	"github.com/sbassa/tutorhub/internal/app/system/apierrors"
	"github.com/sbassa/tutorhub/internal/app/system/timeouts"
	"github.com/sbassa/tutorhub/internal/domain/models"
)

// TestimonialStore is the subset of the testimonial store the handler needs.
// DeleteByID reports a miss with testimonialstore.ErrNotFound.
type TestimonialStore interface {
	Create(ctx context.Context, tm models.Testimonial) (models.Testimonial, error)
	List(ctx context.Context) ([]models.Testimonial, error)
	DeleteByID(ctx context.Context, id string) error
}

// Handler handles the testimonial endpoints.
type Handler struct {
	Testimonials TestimonialStore
	Log          *zap.Logger
}

func NewHandler(store TestimonialStore, logger *zap.Logger) *Handler {
	return &Handler{Testimonials: store, Log: logger}
}

// ServeCreate handles POST /api/testimonials.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in models.TestimonialCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierrors.Unprocessable(w, r, err)
		return
	}
	if err := in.Validate(); err != nil {
		apierrors.Unprocessable(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Testimonials.Create(ctx, models.NewTestimonial(in))
	if err != nil {
		h.Log.Error("create testimonial", zap.Error(err))
		apierrors.Internal(w, r, "Failed to store testimonial")
		return
	}
	render.JSON(w, r, created)
}

// ServeList handles GET /api/testimonials.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Testimonials.List(ctx)
	if err != nil {
		h.Log.Error("list testimonials", zap.Error(err))
		apierrors.Internal(w, r, "Failed to load testimonials")
		return
	}
	render.JSON(w, r, list)
}

// ServeDelete handles DELETE /api/testimonials/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Testimonials.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, testimonialstore.ErrNotFound) {
			apierrors.NotFound(w, r, "Testimonial not found")
			return
		}
		h.Log.Error("delete testimonial", zap.String("id", id), zap.Error(err))
		apierrors.Internal(w, r, "Failed to delete testimonial")
		return
	}
	render.JSON(w, r, map[string]string{"message": "Testimonial deleted successfully"})
}
