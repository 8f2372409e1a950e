// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, and request body size limits.
// AppConfig is where everything specific to this application lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// CORS configuration
	CORSOrigins string // Comma-separated allowed origins ("*" allows all)

	// File storage configuration
	UploadsDir string // Directory where uploaded PDFs are stored

	// Email/SMTP configuration
	MailSMTPHost string // SMTP server host
	MailSMTPPort int    // SMTP server port
	MailSMTPUser string // SMTP username
	MailSMTPPass string // SMTP password (empty disables notifications)
	MailFrom     string // From email address

	// ContactRecipient receives a notification email for each new
	// contact-form message.
	ContactRecipient string

	// MailTimeout bounds each notification send attempt.
	MailTimeout time.Duration
}
