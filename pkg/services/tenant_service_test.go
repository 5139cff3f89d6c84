package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/voxroute/voxroute/test/database"
)

func TestTenantService_ResolveByDomain(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTenantService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)

	t.Run("resolves by domain", func(t *testing.T) {
		got, err := service.ResolveByDomain(ctx, tenant.Domain)
		require.NoError(t, err)
		assert.Equal(t, tenant.ID, got.ID)
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, err := service.ResolveByDomain(ctx, "nobody.example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty domain", func(t *testing.T) {
		_, err := service.ResolveByDomain(ctx, "")
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestTenantService_Authenticate(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewTenantService(client.Client)
	ctx := context.Background()

	tenant := createTestTenant(t, client.Client)

	t.Run("valid credentials", func(t *testing.T) {
		assert.NoError(t, service.Authenticate(tenant, tenant.Domain, tenant.APIKey))
	})

	t.Run("wrong api key", func(t *testing.T) {
		err := service.Authenticate(tenant, tenant.Domain, "wrong-key")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("wrong header domain", func(t *testing.T) {
		err := service.Authenticate(tenant, "other.example.com", tenant.APIKey)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("disabled tenant", func(t *testing.T) {
		disabled, err := tenant.Update().SetEnabled(false).Save(ctx)
		require.NoError(t, err)
		err = service.Authenticate(disabled, disabled.Domain, disabled.APIKey)
		assert.ErrorIs(t, err, ErrTenantDisabled)
	})
}
