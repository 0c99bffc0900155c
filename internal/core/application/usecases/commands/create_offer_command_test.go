package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOfferCommand(t *testing.T) {
	companyID := kernel.NewUUID()
	driver, err := account.NewActor(kernel.NewUUID(), account.RoleDriver, &companyID)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		shipmentID := kernel.NewUUID()
		cmd, err := commands.NewCreateOfferCommand(driver, shipmentID, 125000, "two day window")
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.True(t, cmd.ShipmentID().IsEqual(shipmentID))
		assert.Equal(t, int64(125000), cmd.Price())
		assert.Equal(t, "two day window", cmd.Notes())
		assert.NoError(t, cmd.OfferID().Validate())
	})

	t.Run("customer without company is rejected", func(t *testing.T) {
		customer, err := account.NewActor(kernel.NewUUID(), account.RoleCustomer, nil)
		require.NoError(t, err)

		_, err = commands.NewCreateOfferCommand(customer, kernel.NewUUID(), 125000, "")
		assert.ErrorIs(t, err, commands.ErrActorHasNoCompany)
	})

	t.Run("invalid shipment id is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOfferCommand(driver, kernel.UUID{}, 125000, "")
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOfferCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOfferCommandIsNotConstructed)
	})
}
