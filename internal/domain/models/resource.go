// internal/domain/models/resource.go
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Resource is a catalog entry for learning material: either an external video
// link or a path to an uploaded PDF.
//
// Type, Category and Level are conceptually closed sets ("video"/"pdf",
// subject, education stage) but are stored as free text, matching what the
// API has always accepted. Tightening them to enums would reject inputs that
// were previously valid.
type Resource struct {
	ID          string  `bson:"id" json:"id"`
	Title       string  `bson:"title" json:"title"`
	Description string  `bson:"description" json:"description"`
	Type        string  `bson:"type" json:"type"` // "video" or "pdf"
	URL         string  `bson:"url" json:"url"`   // external link or /api/files/... path
	Category    string  `bson:"category" json:"category"`
	Level       string  `bson:"level" json:"level"`
	Timestamp   ISOTime `bson:"timestamp" json:"timestamp"`
}

// ResourceCreate is the client-supplied portion of a Resource.
type ResourceCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Category    string `json:"category"`
	Level       string `json:"level"`
}

// Validate checks that all fields are present.
func (in ResourceCreate) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "is required")
	}
	if in.Description == "" {
		return invalid("description", "is required")
	}
	if in.Type == "" {
		return invalid("type", "is required")
	}
	if in.URL == "" {
		return invalid("url", "is required")
	}
	if in.Category == "" {
		return invalid("category", "is required")
	}
	if in.Level == "" {
		return invalid("level", "is required")
	}
	return nil
}

// NewResource builds the full entity from a validated input.
func NewResource(in ResourceCreate) Resource {
	return Resource{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		URL:         in.URL,
		Category:    in.Category,
		Level:       in.Level,
		Timestamp:   Now(),
	}
}
