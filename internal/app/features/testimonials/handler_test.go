package testimonials_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/sbassa/tutorhub/internal/app/features/testimonials"
	testimonialstore "github.com/sbassa/tutorhub/internal/app/store/testimonials"
	"github.com/sbassa/tutorhub/internal/testutil"

	"github.com/sbassa/tutorhub/internal/domain/models"
)

// fakeTestimonialStore is an in-memory TestimonialStore for handler tests.
type fakeTestimonialStore struct {
	items []models.Testimonial
}

func (f *fakeTestimonialStore) Create(_ context.Context, tm models.Testimonial) (models.Testimonial, error) {
	f.items = append(f.items, tm)
	return tm, nil
}

func (f *fakeTestimonialStore) List(_ context.Context) ([]models.Testimonial, error) {
	out := []models.Testimonial{}
	return append(out, f.items...), nil
}

func (f *fakeTestimonialStore) DeleteByID(_ context.Context, id string) error {
	for i, tm := range f.items {
		if tm.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return testimonialstore.ErrNotFound
}

func validInput() models.TestimonialCreate {
	return models.TestimonialCreate{
		Name:    "Alice Martin",
		Role:    "parent",
		Content: "Excellent professeur, tres pedagogue.",
		Rating:  5,
	}
}

func TestServeCreate(t *testing.T) {
	store := &fakeTestimonialStore{}
	handler := testimonials.NewHandler(store, zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/testimonials", validInput())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var created models.Testimonial
	testutil.DecodeJSON(t, rec, &created)
	if created.ID == "" {
		t.Error("expected id to be assigned")
	}
	if created.Rating != 5 {
		t.Errorf("rating: got %d, want 5", created.Rating)
	}
	if len(store.items) != 1 {
		t.Fatalf("expected 1 stored testimonial, got %d", len(store.items))
	}
}

func TestServeCreate_RatingOutOfRange(t *testing.T) {
	store := &fakeTestimonialStore{}
	handler := testimonials.NewHandler(store, zap.NewNop())

	for _, rating := range []int{0, 6, -1} {
		in := validInput()
		in.Rating = rating
		req := testutil.NewJSONRequest(t, "POST", "/api/testimonials", in)
		rec := httptest.NewRecorder()

		handler.ServeCreate(rec, req)
		testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
	}
	if len(store.items) != 0 {
		t.Error("invalid testimonials must not be stored")
	}
}

func TestServeList(t *testing.T) {
	store := &fakeTestimonialStore{}
	handler := testimonials.NewHandler(store, zap.NewNop())

	store.items = append(store.items,
		models.NewTestimonial(validInput()),
		models.NewTestimonial(validInput()),
	)

	req := httptest.NewRequest("GET", "/api/testimonials", nil)
	rec := httptest.NewRecorder()

	handler.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var list []models.Testimonial
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 testimonials, got %d", len(list))
	}
}

func TestServeDelete(t *testing.T) {
	store := &fakeTestimonialStore{}
	handler := testimonials.NewHandler(store, zap.NewNop())

	tm := models.NewTestimonial(validInput())
	store.items = append(store.items, tm)

	req := httptest.NewRequest("DELETE", "/api/testimonials/"+tm.ID, nil)
	req = testutil.WithChiURLParam(req, "id", tm.ID)
	rec := httptest.NewRecorder()

	handler.ServeDelete(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var body struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != "Testimonial deleted successfully" {
		t.Errorf("message: got %q", body.Message)
	}
	if len(store.items) != 0 {
		t.Error("testimonial was not removed")
	}
}

func TestServeDelete_NotFound(t *testing.T) {
	handler := testimonials.NewHandler(&fakeTestimonialStore{}, zap.NewNop())

	req := httptest.NewRequest("DELETE", "/api/testimonials/missing", nil)
	req = testutil.WithChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.ServeDelete(rec, req)

	testutil.AssertStatus(t, rec, http.StatusNotFound)

	var body struct {
		Detail string `json:"detail"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if body.Detail != "Testimonial not found" {
		t.Errorf("detail: got %q", body.Detail)
	}
}
