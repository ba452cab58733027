// Package ports defines the interfaces between the application core and its
// adapters: repositories for each aggregate and the unit-of-work boundary
// that linearizes every logical operation inside one storage transaction.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/bundle"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/mapping"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/resource"
	"ordering/internal/core/domain/model/status"
)

// OrderRepository persists the Order aggregate. All reads exclude
// soft-deleted orders unless the method says otherwise.
type OrderRepository interface {
	// Add inserts a new order and assigns its sequential display number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update saves an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its external id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByResource retrieves the non-deleted order holding the resource,
	// if any. Used to verify resource exclusivity.
	GetByResource(ctx context.Context, resourceID uint) (*order.Order, error)

	// ListReclaimable retrieves non-deleted orders whose status is one of
	// statusIDs, payment status is not paid, a resource is attached, and
	// creation predates cutoff. This is the sweep's selection filter; it
	// becomes false for an order once its resource is released, which is
	// what makes the sweep idempotent.
	ListReclaimable(ctx context.Context, statusIDs []uint, cutoff time.Time) ([]*order.Order, error)
}

// StatusRepository persists the status catalog.
type StatusRepository interface {
	Add(ctx context.Context, aggregate *status.Status) error
	Update(ctx context.Context, aggregate *status.Status) error
	Get(ctx context.Context, id uint) (*status.Status, error)
	GetByName(ctx context.Context, name string) (*status.Status, error)
	List(ctx context.Context) ([]*status.Status, error)

	// GetOrCreateByName returns the non-deleted status with the given name,
	// creating it when absent. Backs the lazily-created default creation
	// status and the legacy payment fallback statuses.
	GetOrCreateByName(ctx context.Context, name string) (*status.Status, error)
}

// MappingRepository persists the event/status mapping table — the single
// source of truth for workflow wiring.
type MappingRepository interface {
	Add(ctx context.Context, aggregate *mapping.Mapping) error

	// ResolveStatusesForEvent returns the status ids mapped to the event,
	// ordered by status id ascending. Empty when unconfigured.
	ResolveStatusesForEvent(ctx context.Context, ev event.Event) ([]uint, error)

	// FirstStatusForEvent returns the lowest mapped status id, with ok
	// false when the event is unconfigured.
	FirstStatusForEvent(ctx context.Context, ev event.Event) (uint, bool, error)

	// IsStatusMappedToEvent reports whether the status carries the event
	// tag. Used purely as a side-effect predicate.
	IsStatusMappedToEvent(ctx context.Context, statusID uint, ev event.Event) (bool, error)

	// SoftDeleteForEvent soft-deletes the non-deleted pairs (ev, statusID)
	// for each given status id.
	SoftDeleteForEvent(ctx context.Context, ev event.Event, statusIDs []uint) error
}

// ResourceRepository persists the resource pool.
type ResourceRepository interface {
	Add(ctx context.Context, aggregate *resource.Resource) error
	Get(ctx context.Context, id uint) (*resource.Resource, error)
	GetByNumber(ctx context.Context, number string) (*resource.Resource, error)
	ListAvailable(ctx context.Context) ([]*resource.Resource, error)

	// Update saves an existing resource.
	Update(ctx context.Context, aggregate *resource.Resource) error

	// UpdateIfAvailable marks the resource Sold only if it is still
	// Available at commit time (compare-and-set on the allocation state).
	// Returns a BusinessRuleError when the resource was taken by a
	// concurrent allocation.
	UpdateIfAvailable(ctx context.Context, aggregate *resource.Resource) error
}

// BundleRepository persists the bundle catalog.
type BundleRepository interface {
	Add(ctx context.Context, aggregate *bundle.Bundle) error
	Get(ctx context.Context, id uint) (*bundle.Bundle, error)
	List(ctx context.Context) ([]*bundle.Bundle, error)
}

// AuditFilter narrows the global audit view. Zero values mean "no filter".
type AuditFilter struct {
	Actor  audit.Actor
	Action audit.Action
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// AuditRepository persists the append-only audit trail. There is no update
// or delete: entries are immutable once written.
type AuditRepository interface {
	// Add validates that the referenced order exists, then inserts.
	Add(ctx context.Context, entry *audit.Entry) error

	// ListByOrder returns the order's entries in chronological order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)

	// List returns entries matching the filter, newest first.
	List(ctx context.Context, filter AuditFilter) ([]*audit.Entry, error)
}

// SettingRepository stores operational key/value configuration, such as the
// reclamation schedule. The scheduler re-reads it on every tick.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
