// internal/core/services/resolver_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/test/helpers"
	"github.com/zipos/zipos-be/test/mocks"
)

type resolverFixture struct {
	controlPlane *mocks.MockDatabase
	store        *mocks.MockTenantMetadataStore
	protector    *mocks.MockConnectionProtector
	cache        *mocks.MockCacheRepository
}

func newResolverFixture(t *testing.T) *resolverFixture {
	ctrl := gomock.NewController(t)
	return &resolverFixture{
		controlPlane: mocks.NewMockDatabase(ctrl),
		store:        mocks.NewMockTenantMetadataStore(ctrl),
		protector:    mocks.NewMockConnectionProtector(ctrl),
		cache:        mocks.NewMockCacheRepository(ctrl),
	}
}

func (f *resolverFixture) service(cache ports.CacheRepository, template, defaultConn string) *services.ResolverService {
	return services.NewResolverService(f.controlPlane, f.store, f.protector, cache,
		template, defaultConn, time.Minute, helpers.TestLogger())
}

func TestResolverService_Resolve(t *testing.T) {
	const descriptorKey = "tenant:" + testOrg + ":descriptor"

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newResolverFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), descriptorKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
				*dest.(*string) = "protected-blob"
				return nil
			})
		f.protector.EXPECT().Unprotect("protected-blob").
			Return("postgres://tenant-db/org", nil)

		got, err := f.service(f.cache, "", "").Resolve(context.Background(), testOrg)
		require.NoError(t, err)
		assert.Equal(t, "postgres://tenant-db/org", got)
	})

	t.Run("store record wins and is cached protected", func(t *testing.T) {
		f := newResolverFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), descriptorKey, gomock.Any()).
			Return(errors.New("cache miss"))
		f.store.EXPECT().Get(gomock.Any(), f.controlPlane, testOrg).
			Return(&domain.TenantRecord{
				OrganizationID:       testOrg,
				ConnectionDescriptor: "protected-blob",
				Provider:             domain.ProviderPostgres,
			}, nil)
		f.protector.EXPECT().Unprotect("protected-blob").
			Return("postgres://tenant-db/org", nil)
		f.cache.EXPECT().SetWithTTL(gomock.Any(), descriptorKey, "protected-blob", time.Minute).
			Return(nil)

		got, err := f.service(f.cache, "postgres://{organizationId}", "postgres://shared").
			Resolve(context.Background(), testOrg)
		require.NoError(t, err)
		assert.Equal(t, "postgres://tenant-db/org", got)
	})

	t.Run("template fills the organization placeholder", func(t *testing.T) {
		f := newResolverFixture(t)
		f.store.EXPECT().Get(gomock.Any(), f.controlPlane, testOrg).Return(nil, nil)

		got, err := f.service(nil, "postgres://host/db_{organizationId}", "postgres://shared").
			Resolve(context.Background(), testOrg)
		require.NoError(t, err)
		assert.Equal(t, "postgres://host/db_"+testOrg, got)
	})

	t.Run("default connection is the last fallback", func(t *testing.T) {
		f := newResolverFixture(t)
		f.store.EXPECT().Get(gomock.Any(), f.controlPlane, testOrg).Return(nil, nil)

		got, err := f.service(nil, "", "postgres://shared").Resolve(context.Background(), testOrg)
		require.NoError(t, err)
		assert.Equal(t, "postgres://shared", got)
	})

	t.Run("nothing configured is a configuration error", func(t *testing.T) {
		f := newResolverFixture(t)
		f.store.EXPECT().Get(gomock.Any(), f.controlPlane, testOrg).Return(nil, nil)

		_, err := f.service(nil, "", "").Resolve(context.Background(), testOrg)
		require.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("empty organization id is rejected", func(t *testing.T) {
		f := newResolverFixture(t)

		_, err := f.service(nil, "", "postgres://shared").Resolve(context.Background(), "")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unprotect failure on a stored descriptor surfaces", func(t *testing.T) {
		f := newResolverFixture(t)
		f.store.EXPECT().Get(gomock.Any(), f.controlPlane, testOrg).
			Return(&domain.TenantRecord{
				OrganizationID:       testOrg,
				ConnectionDescriptor: "garbage",
			}, nil)
		f.protector.EXPECT().Unprotect("garbage").
			Return("", errors.New("cipher: message authentication failed"))

		_, err := f.service(nil, "", "").Resolve(context.Background(), testOrg)
		require.Error(t, err)
	})
}

func TestResolverService_Invalidate(t *testing.T) {
	f := newResolverFixture(t)
	f.cache.EXPECT().Delete(gomock.Any(), "tenant:"+testOrg+":descriptor").Return(nil)

	f.service(f.cache, "", "").Invalidate(context.Background(), testOrg)

	// A nil cache is a no-op.
	f.service(nil, "", "").Invalidate(context.Background(), testOrg)
}
