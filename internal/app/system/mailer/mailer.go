// internal/app/system/mailer/mailer.go
//
// Package mailer sends best-effort notification email. Sending never returns
// an error to the caller: any transport, auth, or configuration failure is
// logged and reported as a false result, and an unconfigured mailer (no SMTP
// password) is inert and sends nothing.
package mailer

import (
	"context"
	"time"

	mail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Config holds SMTP transport settings. An empty Password disables sending
// entirely; the mailer stays safe by default until credentials are supplied.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

// Mailer is a fire-and-forget email sender.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

// New returns a Mailer over the given transport settings.
func New(cfg Config, logger *zap.Logger) *Mailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &Mailer{cfg: cfg, log: logger}
}

// Configured reports whether outbound credentials are present.
func (m *Mailer) Configured() bool {
	return m.cfg.Password != ""
}

// SendEmail delivers a single HTML email. It returns true only when the
// message was handed to the SMTP server; false on any failure or when the
// mailer is not configured. It never panics or propagates errors.
func (m *Mailer) SendEmail(ctx context.Context, to, subject, htmlBody string) bool {
	if !m.Configured() {
		m.log.Debug("mail not configured, skipping send", zap.String("to", to))
		return false
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		m.log.Error("invalid from address", zap.String("from", m.cfg.From), zap.Error(err))
		return false
	}
	if err := msg.To(to); err != nil {
		m.log.Error("invalid recipient address", zap.String("to", to), zap.Error(err))
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.User),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		m.log.Error("smtp client init failed", zap.Error(err))
		return false
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		m.log.Error("email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return false
	}

	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return true
}
