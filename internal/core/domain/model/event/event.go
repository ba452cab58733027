// Package event defines the closed set of business events that can drive an
// order status transition. The set is a compile-time constant: new events
// require a code change, unlike statuses and mappings which are runtime data.
package event

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Event is a business occurrence recognized by the lifecycle engine.
type Event int

const (
	// Unknown represents an invalid or undefined event.
	// This value (0) helps catch uninitialized Event values.
	Unknown Event = iota

	// OrderCreated fires when a new order enters the system.
	OrderCreated

	// PaymentSucceeded fires on a successful payment notification.
	PaymentSucceeded

	// PaymentFailed fires on a failed payment notification.
	PaymentFailed

	// ReleaseInventory tags statuses whose entry frees the order's resource.
	ReleaseInventory

	// OrderCancelled fires when an order is cancelled.
	OrderCancelled

	// OrderCompleted fires when an order reaches fulfillment.
	OrderCompleted

	// NumberAssigned fires when a resource is attached to an existing order.
	NumberAssigned

	// AutoReleaseInventory fires when the reclamation sweep frees a resource
	// from an abandoned unpaid order.
	AutoReleaseInventory
)

func getEventNames() map[Event]string {
	return map[Event]string{
		Unknown:              "unknown",
		OrderCreated:         "order_created",
		PaymentSucceeded:     "payment_succeeded",
		PaymentFailed:        "payment_failed",
		ReleaseInventory:     "release_inventory",
		OrderCancelled:       "order_cancelled",
		OrderCompleted:       "order_completed",
		NumberAssigned:       "number_assigned",
		AutoReleaseInventory: "auto_release_inventory",
	}
}

// All returns every valid event, in declaration order.
func All() []Event {
	return []Event{
		OrderCreated,
		PaymentSucceeded,
		PaymentFailed,
		ReleaseInventory,
		OrderCancelled,
		OrderCompleted,
		NumberAssigned,
		AutoReleaseInventory,
	}
}

// ParseEvent resolves an event by its wire name. Unknown names are rejected
// at the boundary with a ValueIsInvalidError rather than compared ad hoc
// deeper in the engine.
func ParseEvent(name string) (Event, error) {
	for _, e := range All() {
		if getEventNames()[e] == name {
			return e, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"event",
		fmt.Errorf("%q is not a recognized event", name),
	)
}

// Validate checks that the event is a member of the closed set.
func (e Event) Validate() error {
	if e <= Unknown || e > AutoReleaseInventory {
		return errs.NewValueIsInvalidErrorWithCause(
			"event",
			fmt.Errorf("%d is not a valid event", e),
		)
	}
	return nil
}

// String returns the wire name of the event. Implements fmt.Stringer and is
// safe to call on any value, including invalid ones.
func (e Event) String() string {
	if name, ok := getEventNames()[e]; ok {
		return name
	}
	return "unknown"
}
