package truck_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruck(t *testing.T) {
	t.Run("starts_active", func(t *testing.T) {
		tr, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", time.Now().Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, tr.IsActive())
	})

	t.Run("missing_fields_are_rejected", func(t *testing.T) {
		_, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "", time.Time{})

		require.ErrorIs(t, err, truck.ErrPlateIsRequired)
		require.ErrorIs(t, err, truck.ErrMaintenanceDueIsRequired)
	})
}

func TestTruck_ShouldDeactivate(t *testing.T) {
	now := time.Now()

	t.Run("overdue_active_truck_is_eligible", func(t *testing.T) {
		tr, _ := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", now.Add(-time.Hour))
		assert.True(t, tr.ShouldDeactivate(now))
	})

	t.Run("maintenance_not_yet_due", func(t *testing.T) {
		tr, _ := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", now.Add(time.Hour))
		assert.False(t, tr.ShouldDeactivate(now))
	})

	t.Run("inactive_truck_is_never_eligible", func(t *testing.T) {
		tr, _ := truck.RestoreTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", false, now.Add(-time.Hour))
		assert.False(t, tr.ShouldDeactivate(now))
	})

	t.Run("predicate_is_pure", func(t *testing.T) {
		tr, _ := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", now.Add(-time.Hour))
		tr.ShouldDeactivate(now)
		assert.True(t, tr.IsActive())
	})
}

func TestTruck_Deactivate(t *testing.T) {
	tr, _ := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "AB-1234", time.Now())

	require.NoError(t, tr.Deactivate())
	assert.False(t, tr.IsActive())

	require.ErrorIs(t, tr.Deactivate(), truck.ErrTruckIsInactive)
}
