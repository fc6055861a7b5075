package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/jsamuelsen/quotes-api/internal/platform/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrate applies every pending migration for the store's dialect. Running it
// against an up-to-date schema is a no-op.
func (s *Store) Migrate(ctx context.Context) error {
	dialect, dir, err := migrationSource(s.driver)
	if err != nil {
		return err
	}

	fsys, err := fs.Sub(migrations, dir)
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, s.sqlDB, fsys, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	for _, r := range results {
		s.logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("path", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}

	return nil
}

func migrationSource(driver string) (goose.Dialect, string, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}
