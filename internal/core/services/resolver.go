// internal/core/services/resolver.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
)

// orgPlaceholder is substituted into the connection template per tenant.
const orgPlaceholder = "{organizationId}"

// ResolverService maps organization ids to plaintext connection descriptors.
// Lookup order: control-plane metadata, then the connection template, then the
// shared default. The cache stores the protected descriptor, never plaintext.
type ResolverService struct {
	controlPlane ports.Database
	store        ports.TenantMetadataStore
	protector    ports.ConnectionProtector
	cache        ports.CacheRepository
	template     string
	defaultConn  string
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// Statically assert that *ResolverService implements the ConnectionResolver interface.
var _ ports.ConnectionResolver = (*ResolverService)(nil)

// NewResolverService creates a resolver. cache may be nil to disable caching.
func NewResolverService(
	controlPlane ports.Database,
	store ports.TenantMetadataStore,
	protector ports.ConnectionProtector,
	cache ports.CacheRepository,
	template, defaultConn string,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *ResolverService {
	return &ResolverService{
		controlPlane: controlPlane,
		store:        store,
		protector:    protector,
		cache:        cache,
		template:     template,
		defaultConn:  defaultConn,
		cacheTTL:     cacheTTL,
		logger:       logger.With(slog.String("service", "resolver")),
	}
}

// Resolve returns the plaintext connection descriptor for an organization.
func (s *ResolverService) Resolve(ctx context.Context, organizationID string) (string, error) {
	if organizationID == "" {
		return "", domain.Validationf("organization id is required")
	}

	if protected, ok := s.cacheGet(ctx, organizationID); ok {
		plaintext, err := s.protector.Unprotect(protected)
		if err != nil {
			return "", fmt.Errorf("failed to unprotect cached descriptor for %s: %w", organizationID, err)
		}
		return plaintext, nil
	}

	record, err := s.store.Get(ctx, s.controlPlane, organizationID)
	if err != nil {
		return "", fmt.Errorf("failed to load tenant record for %s: %w", organizationID, err)
	}

	if record != nil {
		plaintext, err := s.protector.Unprotect(record.ConnectionDescriptor)
		if err != nil {
			return "", fmt.Errorf("failed to unprotect descriptor for %s: %w", organizationID, err)
		}
		s.cacheSet(ctx, organizationID, record.ConnectionDescriptor)
		return plaintext, nil
	}

	if s.template != "" {
		descriptor := strings.ReplaceAll(s.template, orgPlaceholder, organizationID)
		s.logger.DebugContext(ctx, "resolved connection from template",
			slog.String("organization_id", organizationID))
		return descriptor, nil
	}

	if s.defaultConn != "" {
		s.logger.DebugContext(ctx, "resolved connection from default",
			slog.String("organization_id", organizationID))
		return s.defaultConn, nil
	}

	return "", fmt.Errorf("no connection configured for organization %s: %w",
		organizationID, domain.ErrConfiguration)
}

// Invalidate drops the cached descriptor, forcing a fresh lookup on the next
// Resolve. Called after a descriptor rotation.
func (s *ResolverService) Invalidate(ctx context.Context, organizationID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cacheKey(organizationID)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate descriptor cache",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
	}
}

func (s *ResolverService) cacheKey(organizationID string) string {
	return "tenant:" + organizationID + ":descriptor"
}

func (s *ResolverService) cacheGet(ctx context.Context, organizationID string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	var protected string
	if err := s.cache.Get(ctx, s.cacheKey(organizationID), &protected); err != nil {
		return "", false
	}
	return protected, protected != ""
}

func (s *ResolverService) cacheSet(ctx context.Context, organizationID, protected string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetWithTTL(ctx, s.cacheKey(organizationID), protected, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache protected descriptor",
			slog.String("organization_id", organizationID),
			slog.String("error", err.Error()))
	}
}
