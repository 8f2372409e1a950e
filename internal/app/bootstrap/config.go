// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TutorHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, uploads_dir, etc.
//   - Environment variables: TUTORHUB_MONGO_URI, TUTORHUB_UPLOADS_DIR, etc.
//   - Command-line flags: --mongo_uri, --uploads_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "tutorhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// CORS configuration
	{Name: "cors_origins", Default: "*", Desc: "Comma-separated allowed CORS origins"},

	// File storage configuration
	{Name: "uploads_dir", Default: "./uploads", Desc: "Directory for uploaded PDF files"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "smtp.gmail.com", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 587, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password (empty disables notifications)"},
	{Name: "mail_from", Default: "", Desc: "From email address (defaults to mail_smtp_user)"},
	{Name: "contact_recipient", Default: "", Desc: "Address notified of new contact messages (defaults to mail_smtp_user)"},
	{Name: "mail_timeout", Default: "5s", Desc: "Timeout for each notification send (e.g., 5s, 30s)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TUTORHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TUTORHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CORSOrigins: appValues.String("cors_origins"),

		UploadsDir: appValues.String("uploads_dir"),

		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),

		ContactRecipient: appValues.String("contact_recipient"),
		MailTimeout:      appValues.Duration("mail_timeout", 5*time.Second),
	}

	// The sender and notification recipient default to the SMTP account.
	if appCfg.MailFrom == "" {
		appCfg.MailFrom = appCfg.MailSMTPUser
	}
	if appCfg.ContactRecipient == "" {
		appCfg.ContactRecipient = appCfg.MailSMTPUser
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// TutorHub validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.UploadsDir == "" {
		return fmt.Errorf("uploads_dir must not be empty")
	}
	return nil
}
