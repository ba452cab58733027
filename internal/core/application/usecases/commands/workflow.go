package commands

import (
	"context"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/mapping"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// Names of the lazily-created fallback statuses. Created and tagged on
// first use when an operator has not configured the corresponding event.
const (
	defaultCreationStatusName = "New"
	paidFallbackStatusName    = "Paid"
	failedFallbackStatusName  = "Payment Failed"
)

// resolveOrFallback resolves the first status mapped to ev, lazily creating
// and tagging the named fallback status when the event is unconfigured.
// The lowest mapped status id wins when an event maps to several statuses.
func resolveOrFallback(
	ctx context.Context,
	statuses ports.StatusRepository,
	mappings ports.MappingRepository,
	ev event.Event,
	fallbackName string,
) (uint, error) {
	statusID, ok, err := mappings.FirstStatusForEvent(ctx, ev)
	if err != nil {
		return 0, err
	}
	if ok {
		return statusID, nil
	}

	st, err := statuses.GetOrCreateByName(ctx, fallbackName)
	if err != nil {
		return 0, err
	}

	tagged, err := mappings.IsStatusMappedToEvent(ctx, st.ID(), ev)
	if err != nil {
		return 0, err
	}
	if !tagged {
		m, mapErr := mapping.NewMapping(ev, st.ID())
		if mapErr != nil {
			return 0, mapErr
		}
		if mapErr = mappings.Add(ctx, m); mapErr != nil {
			return 0, mapErr
		}
	}

	return st.ID(), nil
}

// shouldReleaseOnFailure decides whether a failed payment frees the order's
// resource: either the target status itself carries the release tag, or a
// release status is configured at all.
func shouldReleaseOnFailure(
	ctx context.Context,
	mappings ports.MappingRepository,
	targetStatusID uint,
) (bool, error) {
	tagged, err := mappings.IsStatusMappedToEvent(ctx, targetStatusID, event.ReleaseInventory)
	if err != nil {
		return false, err
	}
	if tagged {
		return true, nil
	}

	_, configured, err := mappings.FirstStatusForEvent(ctx, event.ReleaseInventory)
	if err != nil {
		return false, err
	}
	return configured, nil
}

// releaseResource frees the order's resource back to the pool and detaches
// resource and bundle from the order. Returns the audit entry recording the
// release; the caller commits it in the same transaction as the order
// update.
func releaseResource(
	ctx context.Context,
	resources ports.ResourceRepository,
	o *order.Order,
	action audit.Action,
	actor audit.Actor,
	actorIdentity, detail string,
	now time.Time,
) (*audit.Entry, error) {
	res, err := resources.Get(ctx, *o.ResourceID())
	if err != nil {
		return nil, err
	}

	res.Release()
	if err = resources.Update(ctx, res); err != nil {
		return nil, err
	}
	o.DetachResource()

	return audit.NewEntry(
		o.ID(),
		action,
		actor,
		actorIdentity,
		fmt.Sprintf("resource %s sold", res.Number()),
		fmt.Sprintf("resource %s available", res.Number()),
		detail,
		now,
	)
}

// writePending commits accumulated audit entries inside the active
// transaction, so the trail can never diverge from the state mutation.
func writePending(ctx context.Context, audits ports.AuditRepository, pending []*audit.Entry) error {
	for _, entry := range pending {
		if err := audits.Add(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
