package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/schedule"
)

// ScheduleSettingKey is the setting under which the reclamation schedule is
// stored. Updates take effect on the sweep's next run.
const ScheduleSettingKey = "reclamation_schedule"

// ReclaimExpiredOrdersCommandHandler performs one reclamation sweep:
// orders still in a creation-tagged status, unpaid, holding a resource and
// older than the grace period lose their resource back to the pool. Each
// order is processed in its own transaction so one failure cannot abort
// the rest. A second immediate run selects nothing, because the released
// resource no longer satisfies the sweep filter.
type ReclaimExpiredOrdersCommandHandler struct {
	uowFactory      ReclaimUoWFactory
	defaultSchedule string
	logger          *slog.Logger
	now             func() time.Time
}

// NewReclaimExpiredOrdersCommandHandler creates a sweep handler. The
// default schedule applies until an operator stores one in settings.
func NewReclaimExpiredOrdersCommandHandler(
	uowFactory ReclaimUoWFactory,
	defaultSchedule string,
	logger *slog.Logger,
) ReclaimExpiredOrdersCommandHandler {
	return ReclaimExpiredOrdersCommandHandler{
		uowFactory:      uowFactory,
		defaultSchedule: defaultSchedule,
		logger:          logger.With("component", "reclaim_expired_orders"),
		now:             time.Now,
	}
}

// Handle runs the sweep and returns the summary of processed orders.
func (h ReclaimExpiredOrdersCommandHandler) Handle(ctx context.Context, cmd ReclaimExpiredOrdersCommand) ([]ReclaimedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := h.now()
	candidates, graceMinutes, err := h.selectCandidates(ctx, now)
	if err != nil {
		return nil, err
	}

	summary := make([]ReclaimedOrder, 0, len(candidates))
	for _, id := range candidates {
		row, reclaimErr := h.reclaimOne(ctx, id, now, graceMinutes)
		if reclaimErr != nil {
			h.logger.ErrorContext(ctx, "Failed to reclaim order",
				"order_id", id.String(), "error", reclaimErr)
			continue
		}
		if row != nil {
			summary = append(summary, *row)
		}
	}

	return summary, nil
}

// selectCandidates reads the configured schedule, classifies it to a grace
// period and returns the ids of orders past the cutoff.
func (h ReclaimExpiredOrdersCommandHandler) selectCandidates(ctx context.Context, now time.Time) ([]kernel.UUID, int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	spec, err := uow.SettingRepository().Get(ctx, ScheduleSettingKey)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, 0, err
		}
		spec = h.defaultSchedule
	}

	graceMinutes, recognized := schedule.GraceMinutes(spec)
	if !recognized {
		h.logger.WarnContext(ctx, "Unrecognized reclamation schedule, using fallback grace period",
			"schedule", spec, "fallback_minutes", graceMinutes)
	}

	creationStatusIDs, err := uow.MappingRepository().ResolveStatusesForEvent(ctx, event.OrderCreated)
	if err != nil {
		return nil, 0, err
	}
	if len(creationStatusIDs) == 0 {
		return nil, graceMinutes, nil
	}

	cutoff := now.Add(-time.Duration(graceMinutes) * time.Minute)
	orders, err := uow.OrderRepository().ListReclaimable(ctx, creationStatusIDs, cutoff)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID())
	}
	return ids, graceMinutes, nil
}

// reclaimOne releases a single order's resource in its own transaction.
// The order is re-read inside the transaction; if it no longer qualifies
// (paid or already released meanwhile) it is skipped without a summary row.
func (h ReclaimExpiredOrdersCommandHandler) reclaimOne(
	ctx context.Context,
	id kernel.UUID,
	now time.Time,
	graceMinutes int,
) (*ReclaimedOrder, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.HasResource() || o.Payment() == order.Paid {
		return nil, uow.Rollback(ctx)
	}

	res, err := uow.ResourceRepository().Get(ctx, *o.ResourceID())
	if err != nil {
		return nil, err
	}

	overdue := int(now.Sub(o.CreatedAt()).Minutes()) - graceMinutes
	if overdue < 0 {
		overdue = 0
	}

	pending := make([]*audit.Entry, 0, 2)

	releaseEntry, err := releaseResource(
		ctx,
		uow.ResourceRepository(),
		o,
		audit.AutoReleaseInventory,
		audit.ActorSystem,
		"reclamation sweep",
		fmt.Sprintf("unpaid %d minutes past the grace period", overdue),
		now,
	)
	if err != nil {
		return nil, err
	}
	pending = append(pending, releaseEntry)

	// Transition to the auto-release status only when one is configured;
	// otherwise the order keeps its current status.
	statusRepo := uow.StatusRepository()
	targetID, ok, err := uow.MappingRepository().FirstStatusForEvent(ctx, event.AutoReleaseInventory)
	if err != nil {
		return nil, err
	}
	if ok && targetID != o.StatusID() {
		oldStatus, stErr := statusRepo.Get(ctx, o.StatusID())
		if stErr != nil {
			return nil, stErr
		}
		newStatus, stErr := statusRepo.Get(ctx, targetID)
		if stErr != nil {
			return nil, stErr
		}

		o.ChangeStatus(targetID)
		statusEntry, stErr := audit.NewEntry(
			o.ID(),
			audit.StatusChanged,
			audit.ActorSystem,
			"reclamation sweep",
			oldStatus.Name(),
			newStatus.Name(),
			"automatic release of abandoned unpaid order",
			now,
		)
		if stErr != nil {
			return nil, stErr
		}
		pending = append(pending, statusEntry)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = writePending(ctx, uow.AuditRepository(), pending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &ReclaimedOrder{
		OrderID:        o.ID().String(),
		DisplayNumber:  o.DisplayNumber(),
		ResourceNumber: res.Number(),
		OverdueMinutes: overdue,
	}, nil
}
