// internal/app/store/testimonials/testimonialstore.go
package testimonialstore

import (
	"context"
	"errors"

	"github.com/sbassa/tutorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListCap bounds how many documents List returns in one call.
const ListCap = 1000

var ErrNotFound = errors.New("testimonial not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("testimonials")}
}

// Create inserts a new testimonial.
func (s *Store) Create(ctx context.Context, tm models.Testimonial) (models.Testimonial, error) {
	if _, err := s.c.InsertOne(ctx, tm); err != nil {
		return models.Testimonial{}, err
	}
	return tm, nil
}

// List returns stored testimonials, capped at ListCap.
func (s *Store) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Testimonial{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes the testimonial whose id field matches id.
// Returns ErrNotFound when no document matched.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
