// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/sbassa/tutorhub/internal/app/system/validators"
)

// EnsureSchema applies collection validators so malformed documents are
// rejected at the database as well as at the API layer.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return validators.EnsureAll(ctx, deps.MongoDatabase)
}
