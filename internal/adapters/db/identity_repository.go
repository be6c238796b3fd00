// internal/adapters/db/identity_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// identityRepository implements ports.IdentityRepository against a tenant
// database. It only covers what provisioning needs: role and admin seeding.
type identityRepository struct {
	logger *slog.Logger
}

// NewIdentityRepository creates a new identity repository
func NewIdentityRepository(logger *slog.Logger) ports.IdentityRepository {
	return &identityRepository{
		logger: logger.With(slog.String("repository", "identity")),
	}
}

// EnsureRole inserts the role when missing; existing roles are left untouched
func (r *identityRepository) EnsureRole(ctx context.Context, q ports.Querier, name, description string, isSystem bool) error {
	query := `
		INSERT INTO roles (id, name, description, is_system_role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO NOTHING`

	_, err := q.Exec(ctx, query, uuid.New().String(), name, description, isSystem, time.Now())
	if err != nil {
		return fmt.Errorf("failed to ensure role %s: %w", name, err)
	}
	return nil
}

// GetUserByEmail retrieves a user, nil when absent
func (r *identityRepository) GetUserByEmail(ctx context.Context, q ports.Querier, email string) (*domain.User, error) {
	query := `
		SELECT id, email, first_name, last_name, password_hash, is_active, created_at
		FROM users
		WHERE email = $1`

	user := &domain.User{}
	err := q.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new user row
func (r *identityRepository) CreateUser(ctx context.Context, q ports.Querier, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, password_hash, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := q.Exec(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, user.IsActive, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.DebugContext(ctx, "user created", slog.String("email", user.Email))
	return nil
}

// AssignRole links a user to a role by role name, idempotently
func (r *identityRepository) AssignRole(ctx context.Context, q ports.Querier, userID, roleName string) error {
	query := `
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT (user_id, role_id) DO NOTHING`

	tag, err := q.Exec(ctx, query, userID, roleName)
	if err != nil {
		return fmt.Errorf("failed to assign role %s: %w", roleName, err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.DebugContext(ctx, "role assignment skipped",
			slog.String("user_id", userID),
			slog.String("role", roleName))
	}
	return nil
}
