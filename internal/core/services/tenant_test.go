// internal/core/services/tenant_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/zipos/zipos-be/internal/core/domain"
	"github.com/zipos/zipos-be/internal/core/ports"
	"github.com/zipos/zipos-be/internal/core/services"
	"github.com/zipos/zipos-be/test/helpers"
	"github.com/zipos/zipos-be/test/mocks"
)

const testDescriptor = "postgres://host/db_org-001"

type provisionerFixture struct {
	controlPlane *mocks.MockDatabase
	store        *mocks.MockTenantMetadataStore
	protector    *mocks.MockConnectionProtector
	schema       *mocks.MockSchemaManager
	identity     *mocks.MockIdentityRepository
	tenantDB     *mocks.MockDatabase
	evicted      []string
}

func (f *provisionerFixture) Evict(organizationID string) {
	f.evicted = append(f.evicted, organizationID)
}

func newProvisionerFixture(t *testing.T) *provisionerFixture {
	ctrl := gomock.NewController(t)
	f := &provisionerFixture{
		controlPlane: mocks.NewMockDatabase(ctrl),
		store:        mocks.NewMockTenantMetadataStore(ctrl),
		protector:    mocks.NewMockConnectionProtector(ctrl),
		schema:       mocks.NewMockSchemaManager(ctrl),
		identity:     mocks.NewMockIdentityRepository(ctrl),
		tenantDB:     mocks.NewMockDatabase(ctrl),
	}
	return f
}

func (f *provisionerFixture) service() *services.ProvisionerService {
	connect := func(ctx context.Context, dsn string) (ports.Database, error) {
		return f.tenantDB, nil
	}
	return services.NewProvisionerService(f.controlPlane, f.store, f.protector,
		f.schema, f.identity, connect, f, bcrypt.MinCost, "changeme", helpers.TestLogger())
}

func TestProvisionerService_Provision(t *testing.T) {
	t.Run("fresh tenant gets database, schema, seed and metadata", func(t *testing.T) {
		f := newProvisionerFixture(t)
		f.schema.EXPECT().EnsureDatabase(gomock.Any(), testDescriptor).Return(nil)
		f.schema.EXPECT().MigrateTenant(gomock.Any(), testDescriptor).Return(nil)
		expectTransaction(f.tenantDB)
		f.tenantDB.EXPECT().Close().AnyTimes()
		f.identity.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), domain.RoleAdmin, gomock.Any(), true).Return(nil)
		f.identity.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), domain.RoleManager, gomock.Any(), true).Return(nil)
		f.identity.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), domain.RoleCashier, gomock.Any(), true).Return(nil)
		f.identity.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), domain.DefaultAdminEmail).Return(nil, nil)
		f.identity.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, user *domain.User) error {
				assert.Equal(t, domain.DefaultAdminEmail, user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte("changeme")))
				return nil
			})
		f.identity.EXPECT().AssignRole(gomock.Any(), gomock.Any(), gomock.Any(), domain.RoleAdmin).Return(nil)
		f.protector.EXPECT().Protect(testDescriptor).Return("protected-blob", nil)
		f.store.EXPECT().Upsert(gomock.Any(), f.controlPlane, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ports.Querier, record *domain.TenantRecord) error {
				assert.Equal(t, testOrg, record.OrganizationID)
				assert.Equal(t, "protected-blob", record.ConnectionDescriptor)
				assert.Equal(t, domain.ProviderPostgres, record.Provider)
				return nil
			})

		err := f.service().Provision(context.Background(), testOrg, testDescriptor)
		require.NoError(t, err)
		assert.Equal(t, []string{testOrg}, f.evicted)
	})

	t.Run("already seeded tenant skips the admin account", func(t *testing.T) {
		f := newProvisionerFixture(t)
		f.schema.EXPECT().EnsureDatabase(gomock.Any(), testDescriptor).Return(nil)
		f.schema.EXPECT().MigrateTenant(gomock.Any(), testDescriptor).Return(nil)
		expectTransaction(f.tenantDB)
		f.tenantDB.EXPECT().Close().AnyTimes()
		f.identity.EXPECT().EnsureRole(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), true).
			Return(nil).Times(3)
		f.identity.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any(), domain.DefaultAdminEmail).
			Return(&domain.User{Email: domain.DefaultAdminEmail}, nil)
		f.protector.EXPECT().Protect(testDescriptor).Return("protected-blob", nil)
		f.store.EXPECT().Upsert(gomock.Any(), f.controlPlane, gomock.Any()).Return(nil)

		err := f.service().Provision(context.Background(), testOrg, testDescriptor)
		require.NoError(t, err)
	})

	t.Run("blank inputs are rejected", func(t *testing.T) {
		f := newProvisionerFixture(t)

		err := f.service().Provision(context.Background(), "", testDescriptor)
		require.ErrorIs(t, err, domain.ErrValidation)

		err = f.service().Provision(context.Background(), testOrg, "")
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProvisionerService_Exists(t *testing.T) {
	f := newProvisionerFixture(t)
	f.store.EXPECT().Exists(gomock.Any(), f.controlPlane, testOrg).Return(true, nil)

	exists, err := f.service().Exists(context.Background(), testOrg)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProvisionerService_Remove(t *testing.T) {
	t.Run("deletes the record and evicts the pool", func(t *testing.T) {
		f := newProvisionerFixture(t)
		f.store.EXPECT().Delete(gomock.Any(), f.controlPlane, testOrg).Return(true, nil)

		err := f.service().Remove(context.Background(), testOrg)
		require.NoError(t, err)
		assert.Equal(t, []string{testOrg}, f.evicted)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		f := newProvisionerFixture(t)
		f.store.EXPECT().Delete(gomock.Any(), f.controlPlane, testOrg).Return(false, nil)

		err := f.service().Remove(context.Background(), testOrg)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
