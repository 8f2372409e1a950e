package contactstore_test

import (
	"testing"

	contactstore "github.com/sbassa/tutorhub/internal/app/store/contacts"
	"github.com/sbassa/tutorhub/internal/domain/models"
	"github.com/sbassa/tutorhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := models.NewContactMessage(models.ContactMessageCreate{
		Name:    "Alice Martin",
		Email:   "alice@example.com",
		Phone:   "0601020304",
		Message: "Bonjour, je cherche des cours de maths.",
	})

	created, err := store.Create(ctx, m)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected ID to be assigned")
	}
	if created.Timestamp.Time().IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}

	for _, name := range []string{"Alice", "Bob", "Carole"} {
		_, err := store.Create(ctx, models.NewContactMessage(models.ContactMessageCreate{
			Name:    name,
			Email:   "someone@example.com",
			Phone:   "0601020304",
			Message: "hello",
		}))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	list, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(list))
	}
}

func TestStore_List_RoundTripsTimestamp(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contactstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.NewContactMessage(models.ContactMessageCreate{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "0601020304",
		Message: "hello",
	}))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 message, got %d", len(list))
	}
	if !list[0].Timestamp.Equal(created.Timestamp) {
		t.Errorf("Timestamp: got %v, want %v", list[0].Timestamp, created.Timestamp)
	}
}
