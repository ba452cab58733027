package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/resource"
	"ordering/internal/core/domain/model/status"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentEventCommandHandler_Handle_Paid(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewApplyPaymentEventCommand(orderID, commands.OutcomePaid, "gw-123")
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Alice Smith", "", "", 1, 1, time.Now())
	oldStatus, _ := status.RestoreStatus(1, "New", false)
	paidStatus, _ := status.RestoreStatus(2, "Paid", false)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.PaymentSucceeded).Return(uint(2), true, nil).Once(),
		statusRepo.On("Get", ctx, uint(1)).Return(oldStatus, nil).Once(),
		statusRepo.On("Get", ctx, uint(2)).Return(paidStatus, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyPaymentEventCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, testOrder.Payment())
	assert.Equal(t, uint(2), testOrder.StatusID())
	orderRepo.AssertExpectations(t)
	statusRepo.AssertExpectations(t)
	mappingRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApplyPaymentEventCommandHandler_Handle_FailedReleasesResource(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewApplyPaymentEventCommand(orderID, commands.OutcomeFailed, "gw-456")
	require.NoError(t, err)

	resourceID := uint(7)
	testOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		&resourceID, nil, 1, order.Unpaid, 1, time.Now(), false,
	)
	oldStatus, _ := status.RestoreStatus(1, "New", false)
	failedStatus, _ := status.RestoreStatus(3, "Payment Failed", false)
	testResource, _ := resource.RestoreResource(7, "01001234567", resource.Sold, 50000, 1000, false)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	resourceRepo := new(MockResourceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.PaymentFailed).Return(uint(3), true, nil).Once(),
		statusRepo.On("Get", ctx, uint(1)).Return(oldStatus, nil).Once(),
		statusRepo.On("Get", ctx, uint(3)).Return(failedStatus, nil).Once(),
		mappingRepo.On("IsStatusMappedToEvent", ctx, uint(3), event.ReleaseInventory).Return(true, nil).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		resourceRepo.On("Update", ctx, mock.AnythingOfType("*resource.Resource")).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Times(3),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyPaymentEventCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentFailed, testOrder.Payment())
	assert.False(t, testOrder.HasResource())
	assert.Equal(t, resource.Available, testResource.State())
	orderRepo.AssertExpectations(t)
	resourceRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyPaymentEventCommandHandler_Handle_FailedKeepsResourceWhenNoReleaseRule(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewApplyPaymentEventCommand(orderID, commands.OutcomeFailed, "gw-789")
	require.NoError(t, err)

	resourceID := uint(7)
	testOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		&resourceID, nil, 1, order.Unpaid, 1, time.Now(), false,
	)
	oldStatus, _ := status.RestoreStatus(1, "New", false)
	failedStatus, _ := status.RestoreStatus(3, "Payment Failed", false)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.PaymentFailed).Return(uint(3), true, nil).Once(),
		statusRepo.On("Get", ctx, uint(1)).Return(oldStatus, nil).Once(),
		statusRepo.On("Get", ctx, uint(3)).Return(failedStatus, nil).Once(),
		mappingRepo.On("IsStatusMappedToEvent", ctx, uint(3), event.ReleaseInventory).Return(false, nil).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.ReleaseInventory).Return(uint(0), false, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyPaymentEventCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.HasResource())
	uow.AssertNotCalled(t, "ResourceRepository")
	mappingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyPaymentEventCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewApplyPaymentEventCommand(orderID, commands.OutcomePaid, "gw-000")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApplyPaymentEventCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestParsePaymentOutcome(t *testing.T) {
	outcome, err := commands.ParsePaymentOutcome("paid")
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePaid, outcome)

	outcome, err = commands.ParsePaymentOutcome("payment_failed")
	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeFailed, outcome)

	_, err = commands.ParsePaymentOutcome("refunded")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
