package company_test

import (
	"testing"

	"freight/internal/core/domain/model/company"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	t.Run("valid_company", func(t *testing.T) {
		c, err := company.NewCompany(kernel.NewUUID(), "Acme Freight", "12 Dock Rd", []string{"ops@acme.test"})

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Acme Freight", c.Name())
		assert.Equal(t, []string{"ops@acme.test"}, c.AdminEmails())
	})

	t.Run("duplicate_admin_emails_are_collapsed", func(t *testing.T) {
		c, err := company.NewCompany(kernel.NewUUID(), "Acme", "12 Dock Rd",
			[]string{"ops@acme.test", "ops@acme.test", ""})

		require.NoError(t, err)
		assert.Equal(t, []string{"ops@acme.test"}, c.AdminEmails())
	})

	t.Run("missing_fields_are_rejected", func(t *testing.T) {
		_, err := company.NewCompany(kernel.NewUUID(), "", "", nil)

		require.ErrorIs(t, err, company.ErrNameIsRequired)
		require.ErrorIs(t, err, company.ErrAddressIsRequired)
		require.ErrorIs(t, err, company.ErrAdminEmailIsRequired)
	})
}

func TestCompany_Update(t *testing.T) {
	c, _ := company.NewCompany(kernel.NewUUID(), "Acme", "12 Dock Rd", []string{"ops@acme.test"})

	require.NoError(t, c.Update("Acme Freight", "14 Dock Rd"))
	assert.Equal(t, "Acme Freight", c.Name())
	assert.Equal(t, "14 Dock Rd", c.Address())

	require.Error(t, c.Update("", "14 Dock Rd"))
}

func TestCompany_AddAdminEmail(t *testing.T) {
	c, _ := company.NewCompany(kernel.NewUUID(), "Acme", "12 Dock Rd", []string{"ops@acme.test"})

	require.NoError(t, c.AddAdminEmail("fleet@acme.test"))
	require.NoError(t, c.AddAdminEmail("fleet@acme.test"))
	assert.Equal(t, []string{"ops@acme.test", "fleet@acme.test"}, c.AdminEmails())

	require.Error(t, c.AddAdminEmail(""))
}

func TestCompany_Validate_ZeroValue(t *testing.T) {
	var c company.Company

	require.ErrorIs(t, c.Validate(), company.ErrCompanyIsNotConstructed)
}
