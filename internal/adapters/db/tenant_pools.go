// internal/adapters/db/tenant_pools.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zipos/zipos-be/internal/core/ports"
)

// TenantPools caches one Database per organization, resolving descriptors
// through the connection resolver on first use. It implements
// ports.TenantDatabases.
type TenantPools struct {
	resolver     ports.ConnectionResolver
	controlPlane ports.Database
	poolConfig   Config
	logger       *slog.Logger

	mu    sync.RWMutex
	pools map[string]*Database
}

// NewTenantPools creates the per-tenant pool cache. poolConfig carries the
// shared pool sizing; its DSN field is replaced per tenant.
func NewTenantPools(resolver ports.ConnectionResolver, controlPlane ports.Database, poolConfig Config, logger *slog.Logger) *TenantPools {
	return &TenantPools{
		resolver:     resolver,
		controlPlane: controlPlane,
		poolConfig:   poolConfig,
		logger:       logger.With(slog.String("component", "tenant_pools")),
		pools:        make(map[string]*Database),
	}
}

// Database returns the pooled handle for an organization, creating it on
// first use. The empty organization id yields the control-plane handle.
func (p *TenantPools) Database(ctx context.Context, organizationID string) (ports.Database, error) {
	if organizationID == "" {
		return p.controlPlane, nil
	}

	p.mu.RLock()
	pool, ok := p.pools[organizationID]
	p.mu.RUnlock()
	if ok {
		return pool, nil
	}

	dsn, err := p.resolver.Resolve(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve connection for %s: %w", organizationID, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have won the race while we resolved.
	if pool, ok := p.pools[organizationID]; ok {
		return pool, nil
	}

	cfg := p.poolConfig
	cfg.DSN = dsn

	pool, err = NewDatabase(ctx, &cfg, p.logger.With(slog.String("organization_id", organizationID)))
	if err != nil {
		return nil, fmt.Errorf("failed to open tenant database for %s: %w", organizationID, err)
	}

	p.pools[organizationID] = pool
	return pool, nil
}

// Evict drops a cached tenant pool, closing its connections. Used when a
// tenant is removed or its descriptor rotates.
func (p *TenantPools) Evict(organizationID string) {
	p.mu.Lock()
	pool, ok := p.pools[organizationID]
	if ok {
		delete(p.pools, organizationID)
	}
	p.mu.Unlock()

	if ok {
		pool.Close()
	}
}

// CloseAll closes every cached tenant pool. The control-plane handle is owned
// by the caller and left open.
func (p *TenantPools) CloseAll() {
	p.mu.Lock()
	pools := p.pools
	p.pools = make(map[string]*Database)
	p.mu.Unlock()

	for id, pool := range pools {
		pool.Close()
		p.logger.Info("tenant pool closed", slog.String("organization_id", id))
	}
}
