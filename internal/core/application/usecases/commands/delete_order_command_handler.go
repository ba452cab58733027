package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
)

// DeleteOrderCommandHandler soft-deletes an order and frees its resource
// in the same transaction. Deleted orders hold no resource.
type DeleteOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	now        func() time.Time
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory LifecycleUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the deletion.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.now()
	pending := make([]*audit.Entry, 0, 2)

	if o.HasResource() {
		releaseEntry, freeErr := releaseResource(
			ctx,
			uow.ResourceRepository(),
			o,
			audit.ReleaseInventory,
			audit.ActorUser,
			cmd.ActorIdentity(),
			"released on order deletion",
			now,
		)
		if freeErr != nil {
			return freeErr
		}
		pending = append(pending, releaseEntry)
	}

	o.MarkDeleted()

	deletedEntry, err := audit.NewEntry(
		o.ID(),
		audit.OrderDeleted,
		audit.ActorUser,
		cmd.ActorIdentity(),
		"active",
		"deleted",
		fmt.Sprintf("order %s soft-deleted", o.ID()),
		now,
	)
	if err != nil {
		return err
	}
	pending = append(pending, deletedEntry)

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
