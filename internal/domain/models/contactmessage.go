// internal/domain/models/contactmessage.go
package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sbassa/tutorhub/internal/app/system/inputval"
)

// ContactMessage is a stored contact-form submission. Messages are immutable
// once created: there is no update or delete path, only create and list.
type ContactMessage struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Email     string  `bson:"email" json:"email"`
	Phone     string  `bson:"phone" json:"phone"`
	Message   string  `bson:"message" json:"message"`
	Timestamp ISOTime `bson:"timestamp" json:"timestamp"`
}

// ContactMessageCreate is the client-supplied portion of a ContactMessage.
// Unknown JSON fields are dropped during decoding, not rejected.
type ContactMessageCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Validate checks required fields and email syntax.
func (in ContactMessageCreate) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name", "is required")
	}
	if !inputval.IsValidEmail(in.Email) {
		return invalid("email", "must be a valid email address")
	}
	if in.Phone == "" {
		return invalid("phone", "is required")
	}
	if in.Message == "" {
		return invalid("message", "is required")
	}
	return nil
}

// NewContactMessage builds the full entity from a validated input, assigning
// a fresh identifier and the current UTC instant.
func NewContactMessage(in ContactMessageCreate) ContactMessage {
	return ContactMessage{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Timestamp: Now(),
	}
}
