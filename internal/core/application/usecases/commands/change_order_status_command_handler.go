package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
)

// ChangeOrderStatusCommandHandler applies a manual workflow transition.
// The audit entry records old and new status names, not ids, so history
// stays legible after renames and deletions. Moving into a status tagged
// for inventory release frees the order's resource in the same transaction.
type ChangeOrderStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for manual
// transitions.
func NewChangeOrderStatusCommandHandler(uowFactory LifecycleUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the manual transition.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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
	statusRepo := uow.StatusRepository()
	mappingRepo := uow.MappingRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	oldStatus, err := statusRepo.Get(ctx, o.StatusID())
	if err != nil {
		return err
	}
	newStatus, err := statusRepo.Get(ctx, cmd.TargetStatusID())
	if err != nil {
		return err
	}

	now := h.now()
	pending := make([]*audit.Entry, 0, 2)

	o.ChangeStatus(newStatus.ID())
	statusEntry, err := audit.NewEntry(
		o.ID(),
		audit.StatusChanged,
		audit.ActorUser,
		cmd.ActorIdentity(),
		oldStatus.Name(),
		newStatus.Name(),
		fmt.Sprintf("manual transition by %s", cmd.ActorIdentity()),
		now,
	)
	if err != nil {
		return err
	}
	pending = append(pending, statusEntry)

	if o.HasResource() {
		tagged, tagErr := mappingRepo.IsStatusMappedToEvent(ctx, newStatus.ID(), event.ReleaseInventory)
		if tagErr != nil {
			return tagErr
		}
		if tagged {
			releaseEntry, freeErr := releaseResource(
				ctx,
				uow.ResourceRepository(),
				o,
				audit.ReleaseInventory,
				audit.ActorUser,
				cmd.ActorIdentity(),
				fmt.Sprintf("released on transition to %s", newStatus.Name()),
				now,
			)
			if freeErr != nil {
				return freeErr
			}
			pending = append(pending, releaseEntry)
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
