// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/sbassa/tutorhub/internal/app/system/apierrors"
	"github.com/sbassa/tutorhub/internal/app/system/mailer"
	"github.com/sbassa/tutorhub/internal/app/system/timeouts"
	"github.com/sbassa/tutorhub/internal/domain/models"
)

// MessageStore is the subset of the contact store the handler needs.
type MessageStore interface {
	Create(ctx context.Context, m models.ContactMessage) (models.ContactMessage, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
}

// Notifier sends the owner a heads-up email for new messages.
type Notifier interface {
	Configured() bool
	SendEmail(ctx context.Context, to, subject, htmlBody string) bool
}

// Handler handles the contact form endpoints.
type Handler struct {
	Messages  MessageStore
	Mail      Notifier
	Recipient string
	Log       *zap.Logger
}

// NewHandler creates a new contact handler. recipient is the address that
// receives new-message notifications.
func NewHandler(messages MessageStore, mail Notifier, recipient string, logger *zap.Logger) *Handler {
	return &Handler{
		Messages:  messages,
		Mail:      mail,
		Recipient: recipient,
		Log:       logger,
	}
}

// ServeCreate handles POST /api/contact.
// Persists the message first, then fires the notification email in the
// background. A notification failure never fails the request.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in models.ContactMessageCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		apierrors.Unprocessable(w, r, err)
		return
	}
	if err := in.Validate(); err != nil {
		apierrors.Unprocessable(w, r, err)
		return
	}

	msg := models.NewContactMessage(in)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Messages.Create(ctx, msg)
	if err != nil {
		h.Log.Error("create contact message", zap.Error(err))
		apierrors.Internal(w, r, "Failed to store contact message")
		return
	}

	h.notify(created)

	render.JSON(w, r, created)
}

// ServeList handles GET /api/contact.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Messages.List(ctx)
	if err != nil {
		h.Log.Error("list contact messages", zap.Error(err))
		apierrors.Internal(w, r, "Failed to load contact messages")
		return
	}
	render.JSON(w, r, list)
}

// notify emails the site owner about a new message. Runs detached from the
// request so a slow or dead SMTP server cannot delay the response.
func (h *Handler) notify(msg models.ContactMessage) {
	if h.Mail == nil || !h.Mail.Configured() || h.Recipient == "" {
		return
	}

	email := mailer.BuildContactEmail(msg.Name, msg.Email, msg.Phone, msg.Message)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Mail())
		defer cancel()
		if !h.Mail.SendEmail(ctx, h.Recipient, email.Subject, email.HTMLBody) {
			h.Log.Warn("contact notification not delivered",
				zap.String("message_id", msg.ID))
		}
	}()
}
