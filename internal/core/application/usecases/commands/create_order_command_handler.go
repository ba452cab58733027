package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles order creation: resolves the initial
// status from the order-creation mapping (lazily creating a default status
// when unconfigured), optionally allocates a resource, and writes the
// order_created audit entry — all in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory LifecycleUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order creation command. When a resource id is
// supplied, availability and exclusivity are re-validated inside the same
// transaction that marks the resource Sold, so a concurrent allocation of
// the same resource fails with a BusinessRuleError instead of
// double-selling.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	statusRepo := uow.StatusRepository()
	mappingRepo := uow.MappingRepository()

	statusID, err := resolveOrFallback(ctx, statusRepo, mappingRepo, event.OrderCreated, defaultCreationStatusName)
	if err != nil {
		return err
	}

	st, err := statusRepo.Get(ctx, statusID)
	if err != nil {
		return err
	}

	now := h.now()
	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.NationalID(),
		statusID,
		cmd.CityID(),
		now,
	)
	if err != nil {
		return err
	}

	pending := make([]*audit.Entry, 0, 2)

	if cmd.ResourceID() != nil {
		entry, allocErr := h.allocate(ctx, uow, o, *cmd.ResourceID(), cmd.BundleID(), now)
		if allocErr != nil {
			return allocErr
		}
		pending = append(pending, entry)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	createdEntry, err := audit.NewEntry(
		o.ID(),
		audit.OrderCreated,
		audit.ActorUser,
		o.CustomerName(),
		"",
		st.Name(),
		fmt.Sprintf("order %s created", o.ID()),
		now,
	)
	if err != nil {
		return err
	}
	pending = append([]*audit.Entry{createdEntry}, pending...)

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// allocate reserves the resource for the new order. The repository's
// compare-and-set on the allocation state is what loses the race cleanly
// when two orders target the same resource.
func (h CreateOrderCommandHandler) allocate(
	ctx context.Context,
	uow LifecycleUoW,
	o *order.Order,
	resourceID uint,
	bundleID *uint,
	now time.Time,
) (*audit.Entry, error) {
	resourceRepo := uow.ResourceRepository()

	res, err := resourceRepo.Get(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	holder, err := uow.OrderRepository().GetByResource(ctx, resourceID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if holder != nil {
		return nil, errs.NewBusinessRuleError(
			"resource exclusivity",
			fmt.Sprintf("resource %s is already attached to order %s", res.Number(), holder.ID()),
		)
	}

	if bundleID != nil {
		if _, err = uow.BundleRepository().Get(ctx, *bundleID); err != nil {
			return nil, err
		}
	}

	if err = res.Reserve(); err != nil {
		return nil, err
	}
	if err = resourceRepo.UpdateIfAvailable(ctx, res); err != nil {
		return nil, err
	}
	if err = o.AttachResource(resourceID, bundleID); err != nil {
		return nil, err
	}

	return audit.NewEntry(
		o.ID(),
		audit.NumberAssigned,
		audit.ActorUser,
		o.CustomerName(),
		fmt.Sprintf("resource %s available", res.Number()),
		fmt.Sprintf("resource %s sold", res.Number()),
		"resource allocated at order creation",
		now,
	)
}
