// internal/app/store/contacts/contactstore.go
package contactstore

import (
	"context"

	"github.com/sbassa/tutorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListCap bounds how many documents List returns in one call.
const ListCap = 1000

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("contact_messages")}
}

// Create inserts a new contact message.
func (s *Store) Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error) {
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.ContactMessage{}, err
	}
	return m, nil
}

// List returns stored contact messages, capped at ListCap.
func (s *Store) List(ctx context.Context) ([]models.ContactMessage, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ContactMessage{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
