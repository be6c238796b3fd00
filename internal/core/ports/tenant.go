// internal/core/ports/tenant.go
package ports

import (
	"context"

	"github.com/zipos/zipos-be/internal/core/domain"
)

// TenantMetadataStore persists tenant connection records in the control-plane
// database. ConnectionDescriptor is stored protected; the store neither
// protects nor unprotects it.
type TenantMetadataStore interface {
	// Get returns nil, nil when no record exists for the organization.
	Get(ctx context.Context, q Querier, organizationID string) (*domain.TenantRecord, error)
	Upsert(ctx context.Context, q Querier, record *domain.TenantRecord) error
	// Delete reports whether a record was removed.
	Delete(ctx context.Context, q Querier, organizationID string) (bool, error)
	Exists(ctx context.Context, q Querier, organizationID string) (bool, error)
	List(ctx context.Context, q Querier) ([]domain.TenantRecord, error)
}

// ConnectionProtector reversibly protects connection descriptors at rest.
// Unprotect passes legacy plaintext values through unchanged but fails hard
// on values that claim to be protected and do not authenticate.
type ConnectionProtector interface {
	Protect(plaintext string) (string, error)
	Unprotect(protected string) (string, error)
}

// ConnectionResolver maps an organization id to a usable plaintext connection
// descriptor, applying the metadata → template → default fallback chain.
type ConnectionResolver interface {
	Resolve(ctx context.Context, organizationID string) (string, error)
}

// SchemaManager creates and migrates physical databases.
type SchemaManager interface {
	// EnsureDatabase creates the database named by dsn when it does not
	// already exist. Creation races with a concurrent provisioner are
	// tolerated.
	EnsureDatabase(ctx context.Context, dsn string) error
	MigrateTenant(ctx context.Context, dsn string) error
	MigrateControlPlane(ctx context.Context, dsn string) error
}

// IdentityRepository seeds and reads the per-tenant identity tables.
type IdentityRepository interface {
	EnsureRole(ctx context.Context, q Querier, name, description string, isSystem bool) error
	GetUserByEmail(ctx context.Context, q Querier, email string) (*domain.User, error)
	CreateUser(ctx context.Context, q Querier, user *domain.User) error
	AssignRole(ctx context.Context, q Querier, userID, roleName string) error
}

// TenantProvisioner orchestrates end-to-end tenant onboarding and removal.
type TenantProvisioner interface {
	// Provision is idempotent: each step (database, schema, seed data,
	// metadata) is skipped or harmlessly repeated when already done.
	Provision(ctx context.Context, organizationID, descriptor string) error
	Exists(ctx context.Context, organizationID string) (bool, error)
	// Remove deletes the metadata record only. The physical database is
	// kept for out-of-band retention handling.
	Remove(ctx context.Context, organizationID string) error
}
