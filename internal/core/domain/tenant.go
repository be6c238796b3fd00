// internal/core/domain/tenant.go
package domain

import "time"

// TenantRecord is the control-plane row mapping an organization to its
// protected connection descriptor. One row per tenant. Removing the row does
// NOT destroy the tenant's data store; that is a human-gated operational step.
type TenantRecord struct {
	OrganizationID       string    `json:"organization_id"`
	ConnectionDescriptor string    `json:"-"` // protected, never serialized
	Provider             string    `json:"provider"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// ProviderPostgres is the only provider tag the current stack emits.
const ProviderPostgres = "postgres"

// Role is a tenant-scoped role seeded at provisioning time.
type Role struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsSystemRole bool      `json:"is_system_role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Names of the baseline roles every tenant starts with.
const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleCashier = "Cashier"
)

// User is the minimal tenant user model the core needs for seeding the
// default administrative account. Authentication lives outside the core.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// DefaultAdminEmail is the seeded administrative account. Its placeholder
// credential must be rotated out-of-band after provisioning.
const DefaultAdminEmail = "admin@tenant.local"
