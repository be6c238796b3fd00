// internal/workers/tenant_migration_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/zipos/zipos-be/internal/core/ports"
)

// TenantMigrationPayload selects the tenant database to migrate.
type TenantMigrationPayload struct {
	OrganizationID string `json:"organization_id"`
}

// TenantMigrationProcessor brings a tenant's schema up to date in the
// background, e.g. after a release that ships new migrations.
type TenantMigrationProcessor struct {
	resolver ports.ConnectionResolver
	schema   ports.SchemaManager
	logger   *slog.Logger
}

// NewTenantMigrationProcessor creates a new tenant migration processor
func NewTenantMigrationProcessor(resolver ports.ConnectionResolver, schema ports.SchemaManager, logger *slog.Logger) *TenantMigrationProcessor {
	return &TenantMigrationProcessor{
		resolver: resolver,
		schema:   schema,
		logger:   logger.With(slog.String("processor", "tenant_migration")),
	}
}

// ProcessMigration resolves the tenant's connection and applies pending
// migrations. Running against an up-to-date database is a no-op.
func (p *TenantMigrationProcessor) ProcessMigration(ctx context.Context, t *asynq.Task) error {
	var payload TenantMigrationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	if payload.OrganizationID == "" {
		return fmt.Errorf("organization_id is required")
	}

	p.logger.InfoContext(ctx, "migrating tenant database",
		slog.String("organization_id", payload.OrganizationID))

	dsn, err := p.resolver.Resolve(ctx, payload.OrganizationID)
	if err != nil {
		return fmt.Errorf("failed to resolve connection for %s: %w", payload.OrganizationID, err)
	}

	if err := p.schema.MigrateTenant(ctx, dsn); err != nil {
		return fmt.Errorf("failed to migrate tenant %s: %w", payload.OrganizationID, err)
	}

	p.logger.InfoContext(ctx, "tenant database migrated",
		slog.String("organization_id", payload.OrganizationID))

	return nil
}
