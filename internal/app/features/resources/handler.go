// internal/app/features/resources/handler.go
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	resourcestore "github.com/sbassa/tutorhub/internal/app/store/resources"
	"github.com/sbassa/tutorhub/internal/app/system/apierrors"
	"github.com/sbassa/tutorhub/internal/app/system/timeouts"
	"github.com/sbassa/tutorhub/internal/domain/models"
)

// ResourceStore is the subset of the resource store the handler needs.
// DeleteByID reports a miss with resourcestore.ErrNotFound.
type ResourceStore interface {
	Create(ctx context.Context, r models.Resource) (models.Resource, error)
	List(ctx context.Context) ([]models.Resource, error)
	DeleteByID(ctx context.Context, id string) error
}

// Handler handles the learning resource endpoints.
type Handler struct {
	Resources ResourceStore
	Log       *zap.Logger
}

func NewHandler(store ResourceStore, logger *zap.Logger) *Handler {
	return &Handler{Resources: store, Log: logger}
}

// ServeCreate handles POST /api/resources.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in models.ResourceCreate
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

	created, err := h.Resources.Create(ctx, models.NewResource(in))
	if err != nil {
		h.Log.Error("create resource", zap.Error(err))
		apierrors.Internal(w, r, "Failed to store resource")
		return
	}
	render.JSON(w, r, created)
}

// ServeList handles GET /api/resources.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Resources.List(ctx)
	if err != nil {
		h.Log.Error("list resources", zap.Error(err))
		apierrors.Internal(w, r, "Failed to load resources")
		return
	}
	render.JSON(w, r, list)
}

// ServeDelete handles DELETE /api/resources/{id}.
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Resources.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			apierrors.NotFound(w, r, "Resource not found")
			return
		}
		h.Log.Error("delete resource", zap.String("id", id), zap.Error(err))
		apierrors.Internal(w, r, "Failed to delete resource")
		return
	}
	render.JSON(w, r, map[string]string{"message": "Resource deleted successfully"})
}
