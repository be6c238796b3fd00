// internal/core/services/tenant.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// ConnectFunc opens a database handle for a plaintext connection descriptor.
// Provisioning cannot go through the resolver because the metadata record does
// not exist yet.
type ConnectFunc func(ctx context.Context, dsn string) (ports.Database, error)

// PoolEvictor drops a cached per-tenant pool after a descriptor change.
type PoolEvictor interface {
	Evict(organizationID string)
}

// ProvisionerService onboards tenants: physical database, schema, seed data
// and the control-plane metadata record. Every step is idempotent so a failed
// run can simply be retried.
type ProvisionerService struct {
	controlPlane  ports.Database
	store         ports.TenantMetadataStore
	protector     ports.ConnectionProtector
	schema        ports.SchemaManager
	identity      ports.IdentityRepository
	connect       ConnectFunc
	evictor       PoolEvictor
	bcryptCost    int
	adminPassword string
	logger        *slog.Logger
}

// Statically assert that *ProvisionerService implements the TenantProvisioner interface.
var _ ports.TenantProvisioner = (*ProvisionerService)(nil)

// NewProvisionerService creates a provisioner. evictor may be nil.
func NewProvisionerService(
	controlPlane ports.Database,
	store ports.TenantMetadataStore,
	protector ports.ConnectionProtector,
	schema ports.SchemaManager,
	identity ports.IdentityRepository,
	connect ConnectFunc,
	evictor PoolEvictor,
	bcryptCost int,
	adminPassword string,
	logger *slog.Logger,
) *ProvisionerService {
	return &ProvisionerService{
		controlPlane:  controlPlane,
		store:         store,
		protector:     protector,
		schema:        schema,
		identity:      identity,
		connect:       connect,
		evictor:       evictor,
		bcryptCost:    bcryptCost,
		adminPassword: adminPassword,
		logger:        logger.With(slog.String("service", "provisioner")),
	}
}

// Provision creates the tenant database, migrates it, seeds baseline identity
// data and records the protected descriptor in the control plane.
func (s *ProvisionerService) Provision(ctx context.Context, organizationID, descriptor string) error {
	if organizationID == "" {
		return domain.Validationf("organization id is required")
	}
	if descriptor == "" {
		return domain.Validationf("connection descriptor is required")
	}

	s.logger.InfoContext(ctx, "provisioning tenant",
		slog.String("organization_id", organizationID))

	if err := s.schema.EnsureDatabase(ctx, descriptor); err != nil {
		return fmt.Errorf("failed to ensure tenant database for %s: %w", organizationID, err)
	}

	if err := s.schema.MigrateTenant(ctx, descriptor); err != nil {
		return fmt.Errorf("failed to migrate tenant database for %s: %w", organizationID, err)
	}

	if err := s.seed(ctx, descriptor); err != nil {
		return fmt.Errorf("failed to seed tenant database for %s: %w", organizationID, err)
	}

	protected, err := s.protector.Protect(descriptor)
	if err != nil {
		return fmt.Errorf("failed to protect descriptor for %s: %w", organizationID, err)
	}

	now := time.Now()
	record := &domain.TenantRecord{
		OrganizationID:       organizationID,
		ConnectionDescriptor: protected,
		Provider:             domain.ProviderPostgres,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.store.Upsert(ctx, s.controlPlane, record); err != nil {
		return fmt.Errorf("failed to store tenant record for %s: %w", organizationID, err)
	}

	// The descriptor may have rotated; a cached pool would point at the old one.
	if s.evictor != nil {
		s.evictor.Evict(organizationID)
	}

	s.logger.InfoContext(ctx, "tenant provisioned",
		slog.String("organization_id", organizationID))

	return nil
}

// Exists reports whether a metadata record exists for the organization.
func (s *ProvisionerService) Exists(ctx context.Context, organizationID string) (bool, error) {
	if organizationID == "" {
		return false, domain.Validationf("organization id is required")
	}
	exists, err := s.store.Exists(ctx, s.controlPlane, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to check tenant record for %s: %w", organizationID, err)
	}
	return exists, nil
}

// Remove deletes the metadata record. The tenant database is left in place.
func (s *ProvisionerService) Remove(ctx context.Context, organizationID string) error {
	if organizationID == "" {
		return domain.Validationf("organization id is required")
	}

	deleted, err := s.store.Delete(ctx, s.controlPlane, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete tenant record for %s: %w", organizationID, err)
	}
	if !deleted {
		return domain.NotFoundf("tenant %s", organizationID)
	}

	if s.evictor != nil {
		s.evictor.Evict(organizationID)
	}

	s.logger.InfoContext(ctx, "tenant removed",
		slog.String("organization_id", organizationID))

	return nil
}

// seed writes the baseline roles and the default administrative account.
// Re-running against an already seeded database is a no-op.
func (s *ProvisionerService) seed(ctx context.Context, descriptor string) error {
	tenantDB, err := s.connect(ctx, descriptor)
	if err != nil {
		return fmt.Errorf("failed to connect to tenant database: %w", err)
	}
	defer tenantDB.Close()

	return tenantDB.Transaction(ctx, func(tx pgx.Tx) error {
		roles := []struct {
			name        string
			description string
		}{
			{domain.RoleAdmin, "Full administrative access"},
			{domain.RoleManager, "Branch management and approvals"},
			{domain.RoleCashier, "Checkout lane operations"},
		}
		for _, r := range roles {
			if err := s.identity.EnsureRole(ctx, tx, r.name, r.description, true); err != nil {
				return fmt.Errorf("failed to ensure role %s: %w", r.name, err)
			}
		}

		existing, err := s.identity.GetUserByEmail(ctx, tx, domain.DefaultAdminEmail)
		if err != nil {
			return fmt.Errorf("failed to look up admin user: %w", err)
		}
		if existing != nil {
			return nil
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), s.bcryptCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &domain.User{
			ID:           uuid.New().String(),
			Email:        domain.DefaultAdminEmail,
			FirstName:    "Default",
			LastName:     "Admin",
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if err := s.identity.CreateUser(ctx, tx, admin); err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		if err := s.identity.AssignRole(ctx, tx, admin.ID, domain.RoleAdmin); err != nil {
			return fmt.Errorf("failed to assign admin role: %w", err)
		}

		return nil
	})
}
