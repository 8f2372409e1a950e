package home_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sbassa/tutorhub/internal/app/features/home"
	"github.com/sbassa/tutorhub/internal/testutil"
)

func TestServeRoot(t *testing.T) {
	handler := home.NewHandler()

	req := httptest.NewRequest("GET", "/api/", nil)
	rec := httptest.NewRecorder()

	handler.ServeRoot(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var body struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, rec, &body)
	if body.Message != home.WelcomeMessage {
		t.Errorf("message: got %q, want %q", body.Message, home.WelcomeMessage)
	}
}
