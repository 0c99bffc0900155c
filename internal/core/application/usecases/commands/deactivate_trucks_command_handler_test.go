package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newActiveTruck(t *testing.T, dueAt time.Time) *truck.Truck {
	t.Helper()
	candidate, err := truck.NewTruck(kernel.NewUUID(), kernel.NewUUID(), "FR-1234-XY", dueAt)
	require.NoError(t, err)
	return candidate
}

func TestDeactivateTrucksCommandHandler_Handle_DeactivatesOverdue(t *testing.T) {
	ctx := t.Context()

	overdue := newActiveTruck(t, time.Now().Add(-time.Hour))
	current := newActiveTruck(t, time.Now().Add(24*time.Hour))

	readRepo := new(MockTruckRepository)
	readUoW := new(MockUoW)
	mock.InOrder(
		readUoW.On("Begin", ctx).Return(nil).Once(),
		readUoW.On("TruckRepository").Return(readRepo).Once(),
		readRepo.On("GetAllActive", ctx).Return([]*truck.Truck{overdue, current}, nil).Once(),
		readUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	writeRepo := new(MockTruckRepository)
	writeUoW := new(MockUoW)
	mock.InOrder(
		writeUoW.On("Begin", ctx).Return(nil).Once(),
		writeUoW.On("TruckRepository").Return(writeRepo).Once(),
		writeRepo.On("Get", ctx, overdue.ID()).Return(overdue, nil).Once(),
		writeRepo.On("Update", ctx, overdue).Return(nil).Once(),
		writeUoW.On("Commit", ctx).Return(nil).Once(),
		writeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(writeUoW).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Template == commands.TemplateTruckMaintenanceDue && n.Recipient.IsEqual(overdue.CompanyID())
	})).Return(nil).Once()

	handler := commands.NewDeactivateTrucksCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, commands.NewDeactivateTrucksCommand())

	require.NoError(t, err)
	assert.False(t, overdue.IsActive())
	assert.True(t, current.IsActive())
	mock.AssertExpectationsForObjects(t, readUoW, readRepo, writeUoW, writeRepo, factory, notifier)
}

func TestDeactivateTrucksCommandHandler_Handle_FailureDoesNotStopSweep(t *testing.T) {
	ctx := t.Context()

	broken := newActiveTruck(t, time.Now().Add(-time.Hour))
	overdue := newActiveTruck(t, time.Now().Add(-time.Hour))

	readRepo := new(MockTruckRepository)
	readUoW := new(MockUoW)
	mock.InOrder(
		readUoW.On("Begin", ctx).Return(nil).Once(),
		readUoW.On("TruckRepository").Return(readRepo).Once(),
		readRepo.On("GetAllActive", ctx).Return([]*truck.Truck{broken, overdue}, nil).Once(),
		readUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	failingRepo := new(MockTruckRepository)
	failingUoW := new(MockUoW)
	mock.InOrder(
		failingUoW.On("Begin", ctx).Return(nil).Once(),
		failingUoW.On("TruckRepository").Return(failingRepo).Once(),
		failingRepo.On("Get", ctx, broken.ID()).Return(nil, errors.New("connection reset")).Once(),
		failingUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	writeRepo := new(MockTruckRepository)
	writeUoW := new(MockUoW)
	mock.InOrder(
		writeUoW.On("Begin", ctx).Return(nil).Once(),
		writeUoW.On("TruckRepository").Return(writeRepo).Once(),
		writeRepo.On("Get", ctx, overdue.ID()).Return(overdue, nil).Once(),
		writeRepo.On("Update", ctx, overdue).Return(nil).Once(),
		writeUoW.On("Commit", ctx).Return(nil).Once(),
		writeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTruckUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(failingUoW).Once()
	factory.On("Create").Return(writeUoW).Once()

	notifier := new(MockNotifier)
	notifier.On("Send", ctx, mock.MatchedBy(func(n ports.Notification) bool {
		return n.Recipient.IsEqual(overdue.CompanyID())
	})).Return(nil).Once()

	handler := commands.NewDeactivateTrucksCommandHandler(factory, notifier, discardLogger())
	err := handler.Handle(ctx, commands.NewDeactivateTrucksCommand())

	require.NoError(t, err)
	assert.True(t, broken.IsActive())
	assert.False(t, overdue.IsActive())
	mock.AssertExpectationsForObjects(t, readUoW, readRepo, failingUoW, failingRepo, writeUoW, writeRepo, factory, notifier)
}
