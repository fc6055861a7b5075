// Package store implements the repository ports on a relational database
// through gorm. PostgreSQL is reached through pgx; SQLite through the pure-Go
// glebarez driver. Schema changes are applied with embedded goose migrations.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jsamuelsen/quotes-api/internal/platform/config"
	"github.com/jsamuelsen/quotes-api/internal/ports"
)

const slowQueryThreshold = 200 * time.Millisecond

// Store owns the database handle and hands out repositories bound to it.
type Store struct {
	db     *gorm.DB
	sqlDB  *sql.DB
	driver string
	logger *slog.Logger
}

// Open connects to the configured database and applies pool settings. It
// does not run migrations.
func Open(cfg *config.DatabaseConfig, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	log = log.With(slog.String("component", "store"), slog.String("driver", cfg.Driver))

	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	level := logger.Warn
	if cfg.LogQueries {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.NewSlogLogger(log, logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("accessing connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Store{db: db, sqlDB: sqlDB, driver: cfg.Driver, logger: log}, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Users returns the user repository.
func (s *Store) Users() *UserRepository {
	return &UserRepository{db: s.db}
}

// Quotes returns the quote repository.
func (s *Store) Quotes() *QuoteRepository {
	return &QuoteRepository{db: s.db}
}

// Tags returns the tag repository.
func (s *Store) Tags() *TagRepository {
	return &TagRepository{db: s.db}
}

// HealthChecker returns a checker that pings the database.
func (s *Store) HealthChecker() ports.HealthChecker {
	return &healthChecker{db: s.sqlDB}
}

// Close releases the connection pool.
func (s *Store) Close() error {
	if err := s.sqlDB.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	return nil
}

type healthChecker struct {
	db *sql.DB
}

func (h *healthChecker) Name() string { return "database" }

func (h *healthChecker) Check(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}

	return nil
}

// translate maps gorm errors onto domain errors for entity.
func translate(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainNotFound(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domainConflict(entity, err)
	default:
		return err
	}
}
