package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
)

// ApplyPaymentEventCommandHandler transitions an order on a payment
// outcome. The target status comes from the payment-succeeded or
// payment-failed mapping; unconfigured events fall back to legacy-named
// statuses created and tagged on first use. On failure, a resource held by
// the order is released when the release rule fires — in the same
// transaction as the status change.
type ApplyPaymentEventCommandHandler struct {
	uowFactory LifecycleUoWFactory
	now        func() time.Time
}

// NewApplyPaymentEventCommandHandler creates a handler for payment
// transitions.
func NewApplyPaymentEventCommandHandler(uowFactory LifecycleUoWFactory) ApplyPaymentEventCommandHandler {
	return ApplyPaymentEventCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle applies the payment outcome. Writes one audit entry per
// sub-effect: the status change, the payment outcome, and the inventory
// release when it happens.
func (h ApplyPaymentEventCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ev := event.PaymentSucceeded
	fallbackName := paidFallbackStatusName
	action := audit.PaymentSucceeded
	if cmd.Outcome() == OutcomeFailed {
		ev = event.PaymentFailed
		fallbackName = failedFallbackStatusName
		action = audit.PaymentFailed
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

	targetID, err := resolveOrFallback(ctx, statusRepo, mappingRepo, ev, fallbackName)
	if err != nil {
		return err
	}

	oldStatus, err := statusRepo.Get(ctx, o.StatusID())
	if err != nil {
		return err
	}
	newStatus, err := statusRepo.Get(ctx, targetID)
	if err != nil {
		return err
	}

	now := h.now()
	pending := make([]*audit.Entry, 0, 3)

	o.ChangeStatus(targetID)
	statusEntry, err := audit.NewEntry(
		o.ID(),
		audit.StatusChanged,
		audit.ActorSystem,
		"payment gateway",
		oldStatus.Name(),
		newStatus.Name(),
		fmt.Sprintf("payment notification %s", cmd.Reference()),
		now,
	)
	if err != nil {
		return err
	}
	pending = append(pending, statusEntry)

	previousPayment := o.Payment().String()
	if cmd.Outcome() == OutcomePaid {
		o.MarkPaid()
	} else {
		o.MarkPaymentFailed()
	}

	if cmd.Outcome() == OutcomeFailed && o.HasResource() {
		release, relErr := shouldReleaseOnFailure(ctx, mappingRepo, targetID)
		if relErr != nil {
			return relErr
		}
		if release {
			releaseEntry, freeErr := releaseResource(
				ctx,
				uow.ResourceRepository(),
				o,
				audit.ReleaseInventory,
				audit.ActorSystem,
				"payment gateway",
				"released after failed payment",
				now,
			)
			if freeErr != nil {
				return freeErr
			}
			pending = append(pending, releaseEntry)
		}
	}

	outcomeEntry, err := audit.NewEntry(
		o.ID(),
		action,
		audit.ActorSystem,
		"payment gateway",
		previousPayment,
		o.Payment().String(),
		fmt.Sprintf("payment notification %s", cmd.Reference()),
		now,
	)
	if err != nil {
		return err
	}
	pending = append(pending, outcomeEntry)

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
