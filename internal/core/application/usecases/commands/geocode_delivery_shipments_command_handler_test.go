package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUnresolvedLeg(t *testing.T) *delivery.Leg {
	t.Helper()
	leg, err := delivery.NewLeg(kernel.NewUUID(), kernel.NewUUID(), "1 Kiln St", "9 Harbor Ave")
	require.NoError(t, err)
	return leg
}

func newPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func TestGeocodeHandler_Handle_ResolvesBothEndpoints(t *testing.T) {
	ctx := t.Context()
	leg := newUnresolvedLeg(t)

	cmd, err := commands.NewGeocodeDeliveryShipmentsCommand([]kernel.UUID{leg.ID()})
	require.NoError(t, err)

	sender := newPoint(t, 48.85, 2.35)
	receiver := newPoint(t, 51.51, -0.13)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetLegs", ctx, cmd.LegIDs()).Return([]*delivery.Leg{leg}, nil).Once(),
		geocoder.On("Geocode", ctx, "1 Kiln St").Return(sender, nil).Once(),
		geocoder.On("Geocode", ctx, "9 Harbor Ave").Return(receiver, nil).Once(),
		repo.On("UpdateLeg", ctx, leg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGeocodeDeliveryShipmentsCommandHandler(factory, geocoder, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, leg.IsGeocoded())
	mock.AssertExpectationsForObjects(t, uow, repo, geocoder, factory)
}

func TestGeocodeHandler_Handle_PermanentFailureLeavesFieldEmpty(t *testing.T) {
	ctx := t.Context()
	leg := newUnresolvedLeg(t)

	cmd, err := commands.NewGeocodeDeliveryShipmentsCommand([]kernel.UUID{leg.ID()})
	require.NoError(t, err)

	receiver := newPoint(t, 51.51, -0.13)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetLegs", ctx, cmd.LegIDs()).Return([]*delivery.Leg{leg}, nil).Once(),
		geocoder.On("Geocode", ctx, "1 Kiln St").Return(kernel.GeoPoint{}, ports.ErrGeocodePermanent).Once(),
		geocoder.On("Geocode", ctx, "9 Harbor Ave").Return(receiver, nil).Once(),
		repo.On("UpdateLeg", ctx, leg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGeocodeDeliveryShipmentsCommandHandler(factory, geocoder, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Nil(t, leg.SenderPoint())
	assert.NotNil(t, leg.ReceiverPoint())
	mock.AssertExpectationsForObjects(t, uow, repo, geocoder, factory)
}

func TestGeocodeHandler_Handle_TransientFailurePersistsPartialAndAborts(t *testing.T) {
	ctx := t.Context()
	leg := newUnresolvedLeg(t)

	cmd, err := commands.NewGeocodeDeliveryShipmentsCommand([]kernel.UUID{leg.ID()})
	require.NoError(t, err)

	sender := newPoint(t, 48.85, 2.35)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetLegs", ctx, cmd.LegIDs()).Return([]*delivery.Leg{leg}, nil).Once(),
		geocoder.On("Geocode", ctx, "1 Kiln St").Return(sender, nil).Once(),
		geocoder.On("Geocode", ctx, "9 Harbor Ave").Return(kernel.GeoPoint{}, ports.ErrGeocodeTransient).Once(),
		repo.On("UpdateLeg", ctx, leg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGeocodeDeliveryShipmentsCommandHandler(factory, geocoder, discardLogger())
	err = handler.Handle(ctx, cmd)

	assert.ErrorIs(t, err, ports.ErrGeocodeTransient)
	assert.NotNil(t, leg.SenderPoint())
	assert.Nil(t, leg.ReceiverPoint())
	mock.AssertExpectationsForObjects(t, uow, repo, geocoder, factory)
}

func TestGeocodeHandler_Handle_SkipsAlreadyResolvedEndpoints(t *testing.T) {
	ctx := t.Context()
	leg := newUnresolvedLeg(t)
	require.NoError(t, leg.SetSenderPoint(newPoint(t, 48.85, 2.35)))

	cmd, err := commands.NewGeocodeDeliveryShipmentsCommand([]kernel.UUID{leg.ID()})
	require.NoError(t, err)

	receiver := newPoint(t, 51.51, -0.13)

	repo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	geocoder := new(MockGeocoder)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("GetLegs", ctx, cmd.LegIDs()).Return([]*delivery.Leg{leg}, nil).Once(),
		geocoder.On("Geocode", ctx, "9 Harbor Ave").Return(receiver, nil).Once(),
		repo.On("UpdateLeg", ctx, leg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewGeocodeDeliveryShipmentsCommandHandler(factory, geocoder, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	geocoder.AssertNotCalled(t, "Geocode", ctx, "1 Kiln St")
	mock.AssertExpectationsForObjects(t, uow, repo, geocoder, factory)
}
