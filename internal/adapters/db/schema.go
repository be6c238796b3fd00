// internal/adapters/db/schema.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zipos/zipos-be/migrations"
)

// pgErrDuplicateDatabase is SQLSTATE 42P04, raised when CREATE DATABASE races
// a concurrent provisioner. The loser treats it as success.
const pgErrDuplicateDatabase = "42P04"

// SchemaManager creates tenant databases and applies the embedded migration
// sets. It implements ports.SchemaManager.
type SchemaManager struct {
	logger *slog.Logger
}

// NewSchemaManager creates a schema manager
func NewSchemaManager(logger *slog.Logger) *SchemaManager {
	return &SchemaManager{
		logger: logger.With(slog.String("component", "schema_manager")),
	}
}

// EnsureDatabase creates the database named in dsn when it does not exist.
// It connects to the server's maintenance database because CREATE DATABASE
// cannot target a database that is not there yet.
func (s *SchemaManager) EnsureDatabase(ctx context.Context, dsn string) error {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse dsn: %w", err)
	}

	dbName := cfg.Database
	if dbName == "" {
		return fmt.Errorf("dsn has no database name")
	}

	adminCfg := cfg.Copy()
	adminCfg.Database = "postgres"

	conn, err := pgx.ConnectConfig(ctx, adminCfg)
	if err != nil {
		return fmt.Errorf("failed to connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check database existence: %w", err)
	}
	if exists {
		s.logger.InfoContext(ctx, "database already exists", slog.String("database", dbName))
		return nil
	}

	ident := pgx.Identifier{dbName}
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident.Sanitize()); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrDuplicateDatabase {
			s.logger.InfoContext(ctx, "database created concurrently", slog.String("database", dbName))
			return nil
		}
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}

	s.logger.InfoContext(ctx, "database created", slog.String("database", dbName))
	return nil
}

// MigrateTenant applies the tenant migration set to the database in dsn.
func (s *SchemaManager) MigrateTenant(ctx context.Context, dsn string) error {
	return s.runMigrations(ctx, dsn, "tenant")
}

// MigrateControlPlane applies the control-plane migration set.
func (s *SchemaManager) MigrateControlPlane(ctx context.Context, dsn string) error {
	return s.runMigrations(ctx, dsn, "controlplane")
}

func (s *SchemaManager) runMigrations(ctx context.Context, dsn, set string) error {
	cfg := &MigrationConfig{
		DatabaseURL: dsn,
		Path:        set,
	}
	switch set {
	case "tenant":
		cfg.Source = migrations.Tenant
	case "controlplane":
		cfg.Source = migrations.ControlPlane
	default:
		return fmt.Errorf("unknown migration set %q", set)
	}

	migrator, err := NewMigrator(cfg, s.logger)
	if err != nil {
		return fmt.Errorf("failed to create migrator for %s set: %w", set, err)
	}
	defer migrator.Close()

	if err := migrator.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply %s migrations: %w", set, err)
	}
	return nil
}
