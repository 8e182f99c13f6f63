package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpirePairingCodesCommandHandler_ClearsOnlyStaleCodes(t *testing.T) {
	stale := newStoredCourier(t, kernel.NewUUID())
	_, err := stale.GeneratePairingCode(time.Now().Add(-10 * time.Minute))
	require.NoError(t, err)

	fresh := newStoredCourier(t, kernel.NewUUID())
	_, err = fresh.GeneratePairingCode(time.Now())
	require.NoError(t, err)

	repo := &MockCourierRepository{}
	uow := &MockCourierUoW{}
	factory := &MockCourierUoWFactory{}
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		repo.On("GetAllWithPairingCode", mock.Anything).
			Return([]*courier.Courier{stale, fresh}, nil).Once(),
		repo.On("Update", mock.Anything, stale).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
	)
	uow.On("CourierRepository").Return(repo)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewExpirePairingCodesCommandHandler(factory)
	expired, err := handler.Handle(t.Context(), commands.NewExpirePairingCodesCommand())

	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Empty(t, stale.PairingCode())
	assert.NotEmpty(t, fresh.PairingCode())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpirePairingCodesCommandHandler_NothingToExpire(t *testing.T) {
	repo := &MockCourierRepository{}
	uow := &MockCourierUoW{}
	factory := &MockCourierUoWFactory{}
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("CourierRepository").Return(repo)
	repo.On("GetAllWithPairingCode", mock.Anything).Return([]*courier.Courier{}, nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	handler := commands.NewExpirePairingCodesCommandHandler(factory)
	expired, err := handler.Handle(t.Context(), commands.NewExpirePairingCodesCommand())

	require.NoError(t, err)
	assert.Zero(t, expired)
	repo.AssertNotCalled(t, "Update")
}

func TestRemindPendingOffersCommandHandler_RemindsStaleOffers(t *testing.T) {
	offered := newOfferedOrder(t, kernel.NewUUID())

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}
	notifier := &MockNotifier{}
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("GetAllInStatus", mock.Anything, order.StatusOffered).
		Return([]*order.Order{offered}, nil)
	notifier.On("NotifyOrderChanged", mock.Anything, offered).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	// the offer was placed just above; let it age past the threshold
	time.Sleep(10 * time.Millisecond)

	cmd, err := commands.NewRemindPendingOffersCommand(2 * time.Millisecond)
	require.NoError(t, err)

	handler := commands.NewRemindPendingOffersCommandHandler(factory, notifier)
	reminded, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, reminded)
	notifier.AssertExpectations(t)
}

func TestRemindPendingOffersCommandHandler_SkipsRecentOffers(t *testing.T) {
	offered := newOfferedOrder(t, kernel.NewUUID())

	repo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	factory := &MockOrderUoWFactory{}
	notifier := &MockNotifier{}
	factory.On("Create").Return(uow)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("OrderRepository").Return(repo)
	repo.On("GetAllInStatus", mock.Anything, order.StatusOffered).
		Return([]*order.Order{offered}, nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	cmd, err := commands.NewRemindPendingOffersCommand(time.Hour)
	require.NoError(t, err)

	handler := commands.NewRemindPendingOffersCommandHandler(factory, notifier)
	reminded, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Zero(t, reminded)
	notifier.AssertNotCalled(t, "NotifyOrderChanged")
}

func TestRemindPendingOffersCommand_RequiresPositiveAge(t *testing.T) {
	_, err := commands.NewRemindPendingOffersCommand(0)
	require.Error(t, err)

	_, err = commands.NewRemindPendingOffersCommand(-time.Minute)
	require.Error(t, err)
}
