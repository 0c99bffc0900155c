package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(40.7128, -74.006)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 40.7128, p.Latitude(), 1e-9)
		assert.InDelta(t, -74.006, p.Longitude(), 1e-9)
	})

	t.Run("boundary_coordinates_are_valid", func(t *testing.T) {
		for _, pair := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			_, err := kernel.NewGeoPoint(pair[0], pair[1])
			require.NoError(t, err)
		}
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.1, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1, 2)
	b, _ := kernel.NewGeoPoint(1, 2)
	c, _ := kernel.NewGeoPoint(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var p kernel.GeoPoint

	require.Error(t, p.Validate())
}
