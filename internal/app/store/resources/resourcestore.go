// internal/app/store/resources/resourcestore.go
package resourcestore

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

var ErrNotFound = errors.New("resource not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("resources")}
}

// Create inserts a new learning resource.
func (s *Store) Create(ctx context.Context, r models.Resource) (models.Resource, error) {
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Resource{}, err
	}
	return r, nil
}

// List returns stored resources, capped at ListCap.
func (s *Store) List(ctx context.Context) ([]models.Resource, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetLimit(ListCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Resource{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteByID removes the resource whose id field matches id.
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
