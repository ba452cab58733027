package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/pkg/errs"
)

// AssignResourceCommandHandler attaches a resource to an order that holds
// none, with the same availability and exclusivity validation as creation.
// When a number-assignment mapping is configured, the order also
// transitions to the mapped status.
type AssignResourceCommandHandler struct {
	uowFactory LifecycleUoWFactory
	now        func() time.Time
}

// NewAssignResourceCommandHandler creates a handler for resource
// assignment.
func NewAssignResourceCommandHandler(uowFactory LifecycleUoWFactory) AssignResourceCommandHandler {
	return AssignResourceCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the assignment. Fails with a BusinessRuleError when the
// order already holds a resource or the resource is unavailable; a losing
// concurrent attempt on the same resource fails the compare-and-set inside
// the allocating transaction.
func (h AssignResourceCommandHandler) Handle(ctx context.Context, cmd AssignResourceCommand) error {
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
	resourceRepo := uow.ResourceRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if o.HasResource() {
		return errs.NewBusinessRuleError(
			"single resource per order",
			fmt.Sprintf("order %s already holds a resource", o.ID()),
		)
	}

	res, err := resourceRepo.Get(ctx, cmd.ResourceID())
	if err != nil {
		return err
	}

	holder, err := orderRepo.GetByResource(ctx, cmd.ResourceID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if holder != nil {
		return errs.NewBusinessRuleError(
			"resource exclusivity",
			fmt.Sprintf("resource %s is already attached to order %s", res.Number(), holder.ID()),
		)
	}

	if cmd.BundleID() != nil {
		if _, err = uow.BundleRepository().Get(ctx, *cmd.BundleID()); err != nil {
			return err
		}
	}

	if err = res.Reserve(); err != nil {
		return err
	}
	if err = resourceRepo.UpdateIfAvailable(ctx, res); err != nil {
		return err
	}
	if err = o.AttachResource(cmd.ResourceID(), cmd.BundleID()); err != nil {
		return err
	}

	now := h.now()
	pending := make([]*audit.Entry, 0, 2)

	assignedEntry, err := audit.NewEntry(
		o.ID(),
		audit.NumberAssigned,
		audit.ActorUser,
		cmd.ActorIdentity(),
		fmt.Sprintf("resource %s available", res.Number()),
		fmt.Sprintf("resource %s sold", res.Number()),
		"resource assigned to existing order",
		now,
	)
	if err != nil {
		return err
	}
	pending = append(pending, assignedEntry)

	statusRepo := uow.StatusRepository()
	mappingRepo := uow.MappingRepository()

	targetID, ok, err := mappingRepo.FirstStatusForEvent(ctx, event.NumberAssigned)
	if err != nil {
		return err
	}
	if ok && targetID != o.StatusID() {
		oldStatus, stErr := statusRepo.Get(ctx, o.StatusID())
		if stErr != nil {
			return stErr
		}
		newStatus, stErr := statusRepo.Get(ctx, targetID)
		if stErr != nil {
			return stErr
		}

		o.ChangeStatus(targetID)
		statusEntry, stErr := audit.NewEntry(
			o.ID(),
			audit.StatusChanged,
			audit.ActorUser,
			cmd.ActorIdentity(),
			oldStatus.Name(),
			newStatus.Name(),
			"transition on number assignment",
			now,
		)
		if stErr != nil {
			return stErr
		}
		pending = append(pending, statusEntry)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
