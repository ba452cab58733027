package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/resource"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReclaimExpiredOrdersCommandHandler_Handle_ReclaimsOverdueOrder(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReclaimExpiredOrdersCommand()

	orderID := kernel.NewUUID()
	resourceID := uint(7)
	// Hourly schedule gives a 60-minute grace period; an unpaid order
	// created 100 minutes ago is 40 minutes overdue.
	staleOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		&resourceID, nil, 1, order.Unpaid, 1, time.Now().Add(-100*time.Minute), false,
	)
	testResource, _ := resource.RestoreResource(7, "01001234567", resource.Sold, 50000, 1000, false)

	settingRepo := new(MockSettingRepository)
	selectOrderRepo := new(MockOrderRepository)
	selectMappingRepo := new(MockMappingRepository)
	selectUoW := new(MockReclaimUoW)

	mock.InOrder(
		selectUoW.On("Begin", ctx).Return(nil).Once(),
		selectUoW.On("SettingRepository").Return(settingRepo).Once(),
		settingRepo.On("Get", ctx, commands.ScheduleSettingKey).Return("0 * * * *", nil).Once(),
		selectUoW.On("MappingRepository").Return(selectMappingRepo).Once(),
		selectMappingRepo.On("ResolveStatusesForEvent", ctx, event.OrderCreated).Return([]uint{1}, nil).Once(),
		selectUoW.On("OrderRepository").Return(selectOrderRepo).Once(),
		selectOrderRepo.On("ListReclaimable", ctx, []uint{1}, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).Once(),
		selectUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	resourceRepo := new(MockResourceRepository)
	auditRepo := new(MockAuditRepository)
	reclaimUoW := new(MockReclaimUoW)

	mock.InOrder(
		reclaimUoW.On("Begin", ctx).Return(nil).Once(),
		reclaimUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(staleOrder, nil).Once(),
		reclaimUoW.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		reclaimUoW.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", ctx, uint(7)).Return(testResource, nil).Once(),
		resourceRepo.On("Update", ctx, mock.AnythingOfType("*resource.Resource")).Return(nil).Once(),
		reclaimUoW.On("StatusRepository").Return(statusRepo).Once(),
		reclaimUoW.On("MappingRepository").Return(mappingRepo).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.AutoReleaseInventory).Return(uint(0), false, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		reclaimUoW.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		reclaimUoW.On("Commit", ctx).Return(nil).Once(),
		reclaimUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReclaimUoWFactory)
	factory.On("Create").Return(selectUoW).Once()
	factory.On("Create").Return(reclaimUoW).Once()

	handler := commands.NewReclaimExpiredOrdersCommandHandler(factory, "* * * * *", discardLogger())
	summary, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, orderID.String(), summary[0].OrderID)
	assert.Equal(t, uint64(42), summary[0].DisplayNumber)
	assert.Equal(t, "01001234567", summary[0].ResourceNumber)
	assert.Equal(t, 40, summary[0].OverdueMinutes)
	assert.False(t, staleOrder.HasResource())
	assert.Equal(t, resource.Available, testResource.State())
	selectUoW.AssertExpectations(t)
	reclaimUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReclaimExpiredOrdersCommandHandler_Handle_SkipsOrderThatNoLongerQualifies(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReclaimExpiredOrdersCommand()

	orderID := kernel.NewUUID()
	resourceID := uint(7)
	staleOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		&resourceID, nil, 1, order.Unpaid, 1, time.Now().Add(-2*time.Hour), false,
	)
	// Re-read inside the reclaiming transaction: the resource is already
	// gone, so the order is skipped without a summary row.
	releasedOrder, _ := order.RestoreOrder(
		orderID, 42, "Alice Smith", "", "",
		nil, nil, 1, order.Unpaid, 1, time.Now().Add(-2*time.Hour), false,
	)

	settingRepo := new(MockSettingRepository)
	selectOrderRepo := new(MockOrderRepository)
	selectMappingRepo := new(MockMappingRepository)
	selectUoW := new(MockReclaimUoW)

	mock.InOrder(
		selectUoW.On("Begin", ctx).Return(nil).Once(),
		selectUoW.On("SettingRepository").Return(settingRepo).Once(),
		settingRepo.On("Get", ctx, commands.ScheduleSettingKey).Return("0 * * * *", nil).Once(),
		selectUoW.On("MappingRepository").Return(selectMappingRepo).Once(),
		selectMappingRepo.On("ResolveStatusesForEvent", ctx, event.OrderCreated).Return([]uint{1}, nil).Once(),
		selectUoW.On("OrderRepository").Return(selectOrderRepo).Once(),
		selectOrderRepo.On("ListReclaimable", ctx, []uint{1}, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{staleOrder}, nil).Once(),
		selectUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	orderRepo := new(MockOrderRepository)
	reclaimUoW := new(MockReclaimUoW)

	mock.InOrder(
		reclaimUoW.On("Begin", ctx).Return(nil).Once(),
		reclaimUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(releasedOrder, nil).Once(),
		reclaimUoW.On("Rollback", ctx).Return(nil).Twice(),
	)

	factory := new(MockReclaimUoWFactory)
	factory.On("Create").Return(selectUoW).Once()
	factory.On("Create").Return(reclaimUoW).Once()

	handler := commands.NewReclaimExpiredOrdersCommandHandler(factory, "* * * * *", discardLogger())
	summary, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, summary)
	reclaimUoW.AssertNotCalled(t, "Commit", ctx)
	reclaimUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReclaimExpiredOrdersCommandHandler_Handle_NoCreationMapping(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReclaimExpiredOrdersCommand()

	settingRepo := new(MockSettingRepository)
	mappingRepo := new(MockMappingRepository)
	uow := new(MockReclaimUoW)

	// No stored schedule: the handler falls back to its default. With no
	// creation-tagged statuses there is nothing to sweep.
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SettingRepository").Return(settingRepo).Once(),
		settingRepo.On("Get", ctx, commands.ScheduleSettingKey).
			Return("", errs.NewObjectNotFoundError("setting", commands.ScheduleSettingKey)).Once(),
		uow.On("MappingRepository").Return(mappingRepo).Once(),
		mappingRepo.On("ResolveStatusesForEvent", ctx, event.OrderCreated).Return([]uint{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReclaimUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReclaimExpiredOrdersCommandHandler(factory, "*/10 * * * *", discardLogger())
	summary, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, summary)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestReclaimExpiredOrdersCommandHandler_Handle_OneFailureDoesNotAbortSweep(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewReclaimExpiredOrdersCommand()

	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()
	firstResource := uint(7)
	secondResource := uint(8)
	firstOrder, _ := order.RestoreOrder(
		firstID, 41, "Alice Smith", "", "",
		&firstResource, nil, 1, order.Unpaid, 1, time.Now().Add(-2*time.Hour), false,
	)
	secondOrder, _ := order.RestoreOrder(
		secondID, 42, "Bob Jones", "", "",
		&secondResource, nil, 1, order.Unpaid, 1, time.Now().Add(-2*time.Hour), false,
	)
	testResource, _ := resource.RestoreResource(8, "01009876543", resource.Sold, 50000, 1000, false)

	settingRepo := new(MockSettingRepository)
	selectOrderRepo := new(MockOrderRepository)
	selectMappingRepo := new(MockMappingRepository)
	selectUoW := new(MockReclaimUoW)

	mock.InOrder(
		selectUoW.On("Begin", ctx).Return(nil).Once(),
		selectUoW.On("SettingRepository").Return(settingRepo).Once(),
		settingRepo.On("Get", ctx, commands.ScheduleSettingKey).Return("0 * * * *", nil).Once(),
		selectUoW.On("MappingRepository").Return(selectMappingRepo).Once(),
		selectMappingRepo.On("ResolveStatusesForEvent", ctx, event.OrderCreated).Return([]uint{1}, nil).Once(),
		selectUoW.On("OrderRepository").Return(selectOrderRepo).Once(),
		selectOrderRepo.On("ListReclaimable", ctx, []uint{1}, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{firstOrder, secondOrder}, nil).Once(),
		selectUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// First order fails on re-read; the sweep logs and moves on.
	failOrderRepo := new(MockOrderRepository)
	failUoW := new(MockReclaimUoW)

	mock.InOrder(
		failUoW.On("Begin", ctx).Return(nil).Once(),
		failUoW.On("OrderRepository").Return(failOrderRepo).Once(),
		failOrderRepo.On("Get", ctx, firstID).
			Return(nil, errs.NewObjectNotFoundError("order", firstID.String())).Once(),
		failUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	orderRepo := new(MockOrderRepository)
	statusRepo := new(MockStatusRepository)
	mappingRepo := new(MockMappingRepository)
	resourceRepo := new(MockResourceRepository)
	auditRepo := new(MockAuditRepository)
	reclaimUoW := new(MockReclaimUoW)

	mock.InOrder(
		reclaimUoW.On("Begin", ctx).Return(nil).Once(),
		reclaimUoW.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, secondID).Return(secondOrder, nil).Once(),
		reclaimUoW.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", ctx, uint(8)).Return(testResource, nil).Once(),
		reclaimUoW.On("ResourceRepository").Return(resourceRepo).Once(),
		resourceRepo.On("Get", ctx, uint(8)).Return(testResource, nil).Once(),
		resourceRepo.On("Update", ctx, mock.AnythingOfType("*resource.Resource")).Return(nil).Once(),
		reclaimUoW.On("StatusRepository").Return(statusRepo).Once(),
		reclaimUoW.On("MappingRepository").Return(mappingRepo).Once(),
		mappingRepo.On("FirstStatusForEvent", ctx, event.AutoReleaseInventory).Return(uint(0), false, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		reclaimUoW.On("AuditRepository").Return(auditRepo).Once(),
		auditRepo.On("Add", ctx, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		reclaimUoW.On("Commit", ctx).Return(nil).Once(),
		reclaimUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReclaimUoWFactory)
	factory.On("Create").Return(selectUoW).Once()
	factory.On("Create").Return(failUoW).Once()
	factory.On("Create").Return(reclaimUoW).Once()

	handler := commands.NewReclaimExpiredOrdersCommandHandler(factory, "* * * * *", discardLogger())
	summary, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, secondID.String(), summary[0].OrderID)
	selectUoW.AssertExpectations(t)
	failUoW.AssertExpectations(t)
	reclaimUoW.AssertExpectations(t)
	factory.AssertExpectations(t)
}
