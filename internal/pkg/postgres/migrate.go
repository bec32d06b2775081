package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Andresg1046/AppTracking/internal/pkg/config"
	"github.com/Andresg1046/AppTracking/migrations"
	"github.com/Andresg1046/AppTracking/pkg/logger"
)

// Migrate applies the embedded goose migrations. It runs on every
// startup, goose skips versions already recorded.
func Migrate(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	db, err := sql.Open("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close migration connection",
				logger.NewField("error", err),
			)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.With(
		logger.NewField("version", version),
	).Info("database migrations applied")
	return nil
}
