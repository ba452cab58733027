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

func TestAssignResourceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignResourceCommand(orderID, 7, nil, "operator@example.com")
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Alice Smith", "", "", 1, 1, time.Now())
	testResource, _ := resource.RestoreResource(7, "01001234567", resource.Available, 50000, 1000, false)

	orderRepo := new(MockOrderRepository)
	mappingRepo := new(MockMappingRepository)
	resourceRepo := new(MockResourceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)

	statusRepo := new(MockStatusRepository)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		orderRepo.On("GetByResource", ctx, uint(7)).
			Return(nil, errs.NewObjectNotFoundError("order by resource", uint(7))).Once(),
		resourceRepo.On("UpdateIfAvailable", ctx, mock.AnythingOfType("*resource.Resource")).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.NumberAssigned).Return(uint(0), false, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, testOrder.HasResource())
	assert.Equal(t, uint(7), *testOrder.ResourceID())
	assert.Equal(t, resource.Sold, testResource.State())
	orderRepo.AssertExpectations(t)
	resourceRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignResourceCommandHandler_Handle_MappedStatusTransition(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignResourceCommand(orderID, 7, nil, "operator@example.com")
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Alice Smith", "", "", 1, 1, time.Now())
	testResource, _ := resource.RestoreResource(7, "01001234567", resource.Available, 50000, 1000, false)
	oldStatus, _ := status.RestoreStatus(1, "New", false)
	assignedStatus, _ := status.RestoreStatus(4, "Number Assigned", false)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	resourceRepo := new(MockResourceRepository)
	auditRepo := new(MockAuditRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		orderRepo.On("GetByResource", ctx, uint(7)).
			Return(nil, errs.NewObjectNotFoundError("order by resource", uint(7))).Once(),
		resourceRepo.On("UpdateIfAvailable", ctx, mock.AnythingOfType("*resource.Resource")).Return(nil).Once(),
		uow.On("StatusRepository").Return(statusRepo).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.NumberAssigned).Return(uint(4), true, nil).Once(),
		statusRepo.On("Get", ctx, uint(1)).Return(oldStatus, nil).Once(),
		statusRepo.On("Get", ctx, uint(4)).Return(assignedStatus, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, uint(4), testOrder.StatusID())
	statusRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignResourceCommandHandler_Handle_OrderAlreadyHoldsResource(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignResourceCommand(orderID, 8, nil, "operator@example.com")
	require.NoError(t, err)

	heldResource := uint(7)
	testOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		&heldResource, nil, 1, order.Unpaid, 1, time.Now(), false,
	)

	orderRepo := new(MockOrderRepository)
	resourceRepo := new(MockResourceRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	resourceRepo.AssertNotCalled(t, "Get", ctx, uint(8))
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestAssignResourceCommandHandler_Handle_ResourceHeldByAnotherOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignResourceCommand(orderID, 7, nil, "operator@example.com")
	require.NoError(t, err)

	testOrder, _ := order.NewOrder(orderID, "Alice Smith", "", "", 1, 1, time.Now())
	testResource, _ := resource.RestoreResource(7, "01001234567", resource.Sold, 50000, 1000, false)
	holderResource := uint(7)
	holder, _ := order.RestoreOrder(
		kernel.NewUUID(), 41, "Bob Jones", "", "",
		&holderResource, nil, 1, order.Unpaid, 1, time.Now(), false,
	)

	orderRepo := new(MockOrderRepository)
	resourceRepo := new(MockResourceRepository)
	uow := new(MockLifecycleUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ResourceRepository").Return(resourceRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		orderRepo.On("GetByResource", ctx, uint(7)).Return(holder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLifecycleUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignResourceCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	resourceRepo.AssertNotCalled(t, "UpdateIfAvailable", ctx, mock.Anything)
	uow.AssertExpectations(t)
}
