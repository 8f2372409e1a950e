// internal/domain/models/testimonial.go
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Rating bounds for testimonials, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a stored student or parent testimonial.
type Testimonial struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Role      string  `bson:"role" json:"role"` // e.g. "Élève en Terminale S", "Parent d'élève"
	Content   string  `bson:"content" json:"content"`
	Rating    int     `bson:"rating" json:"rating"`
	Timestamp ISOTime `bson:"timestamp" json:"timestamp"`
}

// TestimonialCreate is the client-supplied portion of a Testimonial.
type TestimonialCreate struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Validate checks required fields and the rating range. Out-of-range ratings
// are rejected before anything reaches the store.
func (in TestimonialCreate) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}
	if in.Role == "" {
		return invalid("role", "is required")
	}
	if in.Content == "" {
		return invalid("content", "is required")
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return invalid("rating", "must be between 1 and 5")
	}
	return nil
}

// NewTestimonial builds the full entity from a validated input.
func NewTestimonial(in TestimonialCreate) Testimonial {
	return Testimonial{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Role:      in.Role,
		Content:   in.Content,
		Rating:    in.Rating,
		Timestamp: Now(),
	}
}
