// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	contactfeature "github.com/sbassa/tutorhub/internal/app/features/contact"
	healthfeature "github.com/sbassa/tutorhub/internal/app/features/health"
	homefeature "github.com/sbassa/tutorhub/internal/app/features/home"
	resourcesfeature "github.com/sbassa/tutorhub/internal/app/features/resources"
	testimonialsfeature "github.com/sbassa/tutorhub/internal/app/features/testimonials"
	uploadsfeature "github.com/sbassa/tutorhub/internal/app/features/uploads"
	contactstore "github.com/sbassa/tutorhub/internal/app/store/contacts"
	resourcestore "github.com/sbassa/tutorhub/internal/app/store/resources"
	testimonialstore "github.com/sbassa/tutorhub/internal/app/store/testimonials"
	"github.com/sbassa/tutorhub/internal/app/system/filestore"
	"github.com/sbassa/tutorhub/internal/app/system/mailer"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the stores and system
// services, then mounts one feature router per API area under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	files, err := filestore.New(appCfg.UploadsDir)
	if err != nil {
		logger.Error("uploads directory init failed", zap.Error(err))
		return nil, err
	}

	mail := mailer.New(mailer.Config{
		Host:     appCfg.MailSMTPHost,
		Port:     appCfg.MailSMTPPort,
		User:     appCfg.MailSMTPUser,
		Password: appCfg.MailSMTPPass,
		From:     appCfg.MailFrom,
		Timeout:  appCfg.MailTimeout,
	}, logger)
	if !mail.Configured() {
		logger.Info("SMTP password not set, contact notifications disabled")
	}

	contactHandler := contactfeature.NewHandler(
		contactstore.New(deps.MongoDatabase), mail, appCfg.ContactRecipient, logger)
	testimonialHandler := testimonialsfeature.NewHandler(
		testimonialstore.New(deps.MongoDatabase), logger)
	resourceHandler := resourcesfeature.NewHandler(
		resourcestore.New(deps.MongoDatabase), logger)
	uploadHandler := uploadsfeature.NewHandler(files, logger)
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   splitOrigins(appCfg.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/", homefeature.Routes(homefeature.NewHandler()))
		api.Mount("/contact", contactfeature.Routes(contactHandler))
		api.Mount("/testimonials", testimonialsfeature.Routes(testimonialHandler))
		api.Mount("/resources", resourcesfeature.Routes(resourceHandler))
		api.Mount("/upload", uploadsfeature.UploadRoutes(uploadHandler))
		api.Mount("/files", uploadsfeature.FileRoutes(uploadHandler))
	})

	r.Mount("/health", healthfeature.Routes(healthHandler))

	return r, nil
}

// splitOrigins turns the comma-separated cors_origins value into the list
// go-chi/cors expects.
func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{"*"}
	}
	return out
}
