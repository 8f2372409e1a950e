package contact_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sbassa/tutorhub/internal/app/features/contact"
	"github.com/sbassa/tutorhub/internal/domain/models"
	"github.com/sbassa/tutorhub/internal/testutil"
)

// fakeMessageStore is an in-memory MessageStore for handler tests.
type fakeMessageStore struct {
	messages []models.ContactMessage
	failWith error
}

func (f *fakeMessageStore) Create(_ context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	if f.failWith != nil {
		return models.ContactMessage{}, f.failWith
	}
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeMessageStore) List(_ context.Context) ([]models.ContactMessage, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := []models.ContactMessage{}
	return append(out, f.messages...), nil
}

// fakeNotifier records sends on a channel so tests can wait for the
// background notification goroutine.
type fakeNotifier struct {
	configured bool
	sent       chan sentEmail
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

func newFakeNotifier(configured bool) *fakeNotifier {
	return &fakeNotifier{configured: configured, sent: make(chan sentEmail, 1)}
}

func (f *fakeNotifier) Configured() bool { return f.configured }

func (f *fakeNotifier) SendEmail(_ context.Context, to, subject, htmlBody string) bool {
	f.sent <- sentEmail{To: to, Subject: subject, Body: htmlBody}
	return true
}

func validInput() models.ContactMessageCreate {
	return models.ContactMessageCreate{
		Name:    "Alice Martin",
		Email:   "alice@example.com",
		Phone:   "0601020304",
		Message: "Bonjour, je cherche des cours de maths.",
	}
}

func TestServeCreate(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := newFakeNotifier(true)
	handler := contact.NewHandler(store, notifier, "owner@example.com", zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", validInput())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var created models.ContactMessage
	testutil.DecodeJSON(t, rec, &created)
	if created.ID == "" {
		t.Error("expected id to be assigned")
	}
	if created.Name != "Alice Martin" {
		t.Errorf("name: got %q, want %q", created.Name, "Alice Martin")
	}
	if created.Timestamp.Time().IsZero() {
		t.Error("expected timestamp to be set")
	}
	if len(store.messages) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(store.messages))
	}
}

func TestServeCreate_SendsNotification(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := newFakeNotifier(true)
	handler := contact.NewHandler(store, notifier, "owner@example.com", zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", validInput())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	select {
	case email := <-notifier.sent:
		if email.To != "owner@example.com" {
			t.Errorf("recipient: got %q, want %q", email.To, "owner@example.com")
		}
		if email.Subject != "Nouveau contact de Alice Martin" {
			t.Errorf("subject: got %q", email.Subject)
		}
		if !strings.Contains(email.Body, "alice@example.com") {
			t.Errorf("body missing sender email: %q", email.Body)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was never sent")
	}
}

func TestServeCreate_UnconfiguredMailSkipsNotification(t *testing.T) {
	store := &fakeMessageStore{}
	notifier := newFakeNotifier(false)
	handler := contact.NewHandler(store, notifier, "owner@example.com", zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", validInput())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)
	testutil.AssertStatus(t, rec, http.StatusOK)

	select {
	case <-notifier.sent:
		t.Fatal("notification sent despite mail being unconfigured")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestServeCreate_InvalidEmail(t *testing.T) {
	store := &fakeMessageStore{}
	handler := contact.NewHandler(store, newFakeNotifier(true), "owner@example.com", zap.NewNop())

	in := validInput()
	in.Email = "not-an-email"
	req := testutil.NewJSONRequest(t, "POST", "/api/contact", in)
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)

	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
	if len(store.messages) != 0 {
		t.Error("invalid message must not be stored")
	}
	if !strings.Contains(rec.Body.String(), "detail") {
		t.Errorf("expected detail envelope, got %q", rec.Body.String())
	}
}

func TestServeCreate_MalformedBody(t *testing.T) {
	handler := contact.NewHandler(&fakeMessageStore{}, newFakeNotifier(true), "owner@example.com", zap.NewNop())

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)
	testutil.AssertStatus(t, rec, http.StatusUnprocessableEntity)
}

func TestServeCreate_StoreFailure(t *testing.T) {
	store := &fakeMessageStore{failWith: errors.New("connection reset")}
	handler := contact.NewHandler(store, newFakeNotifier(true), "owner@example.com", zap.NewNop())

	req := testutil.NewJSONRequest(t, "POST", "/api/contact", validInput())
	rec := httptest.NewRecorder()

	handler.ServeCreate(rec, req)
	testutil.AssertStatus(t, rec, http.StatusInternalServerError)
}

func TestServeList(t *testing.T) {
	store := &fakeMessageStore{}
	handler := contact.NewHandler(store, newFakeNotifier(false), "", zap.NewNop())

	for i := 0; i < 2; i++ {
		store.messages = append(store.messages, models.NewContactMessage(validInput()))
	}

	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()

	handler.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var list []models.ContactMessage
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(list))
	}
}

func TestServeList_Empty(t *testing.T) {
	handler := contact.NewHandler(&fakeMessageStore{}, newFakeNotifier(false), "", zap.NewNop())

	req := httptest.NewRequest("GET", "/api/contact", nil)
	rec := httptest.NewRecorder()

	handler.ServeList(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}
