package offer_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 10000, "two pallets")
	require.NoError(t, err)
	return o
}

func TestNewOffer(t *testing.T) {
	t.Run("starts_pending", func(t *testing.T) {
		o := newTestOffer(t)

		assert.Equal(t, offer.StatusPending, o.Status())
		assert.Equal(t, int64(10000), o.Price())
		assert.Equal(t, "two pallets", o.Notes())
	})

	t.Run("non_positive_price_is_rejected", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, "")
		require.ErrorIs(t, err, offer.ErrPriceIsInvalid)

		_, err = offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), -5, "")
		require.ErrorIs(t, err, offer.ErrPriceIsInvalid)
	})
}

func TestOffer_AcceptAndReject(t *testing.T) {
	t.Run("accept_from_pending", func(t *testing.T) {
		o := newTestOffer(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, offer.StatusAccepted, o.Status())
	})

	t.Run("reject_from_pending", func(t *testing.T) {
		o := newTestOffer(t)

		require.NoError(t, o.Reject())
		assert.Equal(t, offer.StatusRejected, o.Status())
	})

	t.Run("terminal_states_reject_further_transitions", func(t *testing.T) {
		accepted := newTestOffer(t)
		require.NoError(t, accepted.Accept())
		require.ErrorIs(t, accepted.Accept(), errs.ErrInvalidTransition)
		require.ErrorIs(t, accepted.Reject(), errs.ErrInvalidTransition)

		rejected := newTestOffer(t)
		require.NoError(t, rejected.Reject())
		require.ErrorIs(t, rejected.Accept(), errs.ErrInvalidTransition)
		require.ErrorIs(t, rejected.Reject(), errs.ErrInvalidTransition)
	})
}

func TestRestoreOffer(t *testing.T) {
	o, err := offer.RestoreOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		500, "", offer.StatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, offer.StatusAccepted, o.Status())

	_, err = offer.RestoreOffer(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		500, "", offer.StatusUnknown)
	require.Error(t, err)
}

func TestOffer_Validate_ZeroValue(t *testing.T) {
	var o offer.Offer

	require.ErrorIs(t, o.Validate(), offer.ErrOfferIsNotConstructed)
}
