package account_test

import (
	"testing"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	companyID := kernel.NewUUID()

	t.Run("admin_with_company", func(t *testing.T) {
		actor, err := account.NewActor(kernel.NewUUID(), account.RoleAdmin, &companyID)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, account.RoleAdmin, actor.Role())
		assert.True(t, actor.IsMemberOf(companyID))
	})

	t.Run("driver_without_company_is_rejected", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleDriver, nil)

		require.ErrorIs(t, err, account.ErrStaffRequiresCompany)
	})

	t.Run("customer_without_company", func(t *testing.T) {
		actor, err := account.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)

		require.NoError(t, err)
		assert.Nil(t, actor.CompanyID())
		assert.False(t, actor.IsMemberOf(companyID))
	})

	t.Run("customer_with_company_is_rejected", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleCustomer, &companyID)

		require.ErrorIs(t, err, account.ErrCustomerHasCompany)
	})

	t.Run("unknown_role_is_rejected", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.RoleUnknown, nil)

		require.Error(t, err)
	})
}

func TestRoleFromString(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want account.Role
	}{
		{"Admin", account.RoleAdmin},
		{"Driver", account.RoleDriver},
		{"Customer", account.RoleCustomer},
	} {
		role, err := account.RoleFromString(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.want, role)
		assert.Equal(t, tc.raw, role.String())
	}

	_, err := account.RoleFromString("Dispatcher")
	require.Error(t, err)
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, account.RoleAdmin.IsStaff())
	assert.True(t, account.RoleDriver.IsStaff())
	assert.False(t, account.RoleCustomer.IsStaff())
	assert.False(t, account.RoleUnknown.IsStaff())
}
