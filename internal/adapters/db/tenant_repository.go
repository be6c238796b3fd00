// internal/adapters/db/tenant_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// tenantRepository implements ports.TenantMetadataStore against the
// control-plane database. Descriptors pass through as-is; protection is the
// caller's concern.
type tenantRepository struct {
	logger *slog.Logger
}

// NewTenantRepository creates a new tenant metadata store
func NewTenantRepository(logger *slog.Logger) ports.TenantMetadataStore {
	return &tenantRepository{
		logger: logger.With(slog.String("repository", "tenant")),
	}
}

// Get retrieves one tenant record, nil when absent
func (r *tenantRepository) Get(ctx context.Context, q ports.Querier, organizationID string) (*domain.TenantRecord, error) {
	query := `
		SELECT organization_id, connection_descriptor, provider, created_at, updated_at
		FROM tenant_connections
		WHERE organization_id = $1`

	rec := &domain.TenantRecord{}
	err := q.QueryRow(ctx, query, organizationID).Scan(
		&rec.OrganizationID, &rec.ConnectionDescriptor, &rec.Provider,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find tenant record: %w", err)
	}
	return rec, nil
}

// Upsert writes the tenant record keyed by organization id
func (r *tenantRepository) Upsert(ctx context.Context, q ports.Querier, record *domain.TenantRecord) error {
	query := `
		INSERT INTO tenant_connections (
			organization_id, connection_descriptor, provider, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (organization_id) DO UPDATE SET
			connection_descriptor = EXCLUDED.connection_descriptor,
			provider = EXCLUDED.provider,
			updated_at = EXCLUDED.updated_at`

	now := time.Now()
	_, err := q.Exec(ctx, query,
		record.OrganizationID, record.ConnectionDescriptor, record.Provider, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert tenant record: %w", err)
	}

	r.logger.DebugContext(ctx, "tenant record upserted",
		slog.String("organization_id", record.OrganizationID))

	return nil
}

// Delete removes the tenant record, reporting whether one existed
func (r *tenantRepository) Delete(ctx context.Context, q ports.Querier, organizationID string) (bool, error) {
	tag, err := q.Exec(ctx, `DELETE FROM tenant_connections WHERE organization_id = $1`, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete tenant record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Exists checks whether a tenant record exists
func (r *tenantRepository) Exists(ctx context.Context, q ports.Querier, organizationID string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tenant_connections WHERE organization_id = $1)`,
		organizationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check tenant existence: %w", err)
	}
	return exists, nil
}

// List returns all tenant records ordered by organization id
func (r *tenantRepository) List(ctx context.Context, q ports.Querier) ([]domain.TenantRecord, error) {
	query := `
		SELECT organization_id, connection_descriptor, provider, created_at, updated_at
		FROM tenant_connections
		ORDER BY organization_id`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenant records: %w", err)
	}
	defer rows.Close()

	var records []domain.TenantRecord
	for rows.Next() {
		var rec domain.TenantRecord
		err := rows.Scan(
			&rec.OrganizationID, &rec.ConnectionDescriptor, &rec.Provider,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return records, nil
}
