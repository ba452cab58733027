// Package audit models the append-only trail recording every order
// mutation. Entries snapshot human-readable status names, not ids, so
// history stays legible after renames and deletions. Entries are never
// updated or hard-deleted.
package audit

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via
// NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Action identifies the kind of mutation an entry records.
type Action int

const (
	ActionUnknown Action = iota
	OrderCreated
	StatusChanged
	ReleaseInventory
	PaymentSucceeded
	PaymentFailed
	NumberAssigned
	AutoReleaseInventory
	OrderDeleted
)

func getActionNames() map[Action]string {
	return map[Action]string{
		ActionUnknown:        "unknown",
		OrderCreated:         "order_created",
		StatusChanged:        "status_changed",
		ReleaseInventory:     "release_inventory",
		PaymentSucceeded:     "payment_succeeded",
		PaymentFailed:        "payment_failed",
		NumberAssigned:       "number_assigned",
		AutoReleaseInventory: "auto_release_inventory",
		OrderDeleted:         "order_deleted",
	}
}

// ParseAction resolves an action by its wire name, for audit-log filters.
func ParseAction(name string) (Action, error) {
	for a, n := range getActionNames() {
		if a != ActionUnknown && n == name {
			return a, nil
		}
	}
	return ActionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"action",
		fmt.Errorf("%q is not a recognized action", name),
	)
}

// Validate checks the action is a defined value.
func (a Action) Validate() error {
	if a <= ActionUnknown || a > OrderDeleted {
		return errs.NewValueIsInvalidErrorWithCause(
			"action",
			fmt.Errorf("%d is not a valid action", a),
		)
	}
	return nil
}

// String returns the wire name of the action.
func (a Action) String() string {
	if name, ok := getActionNames()[a]; ok {
		return name
	}
	return "unknown"
}

// Actor identifies who performed a mutation.
type Actor int

const (
	ActorUnknown Actor = iota

	// ActorSystem marks mutations performed by the engine itself, such as
	// the reclamation sweep.
	ActorSystem

	// ActorUser marks mutations performed on behalf of an operator.
	ActorUser
)

func getActorNames() map[Actor]string {
	return map[Actor]string{
		ActorUnknown: "unknown",
		ActorSystem:  "system",
		ActorUser:    "user",
	}
}

// ParseActor resolves an actor kind by its wire name.
func ParseActor(name string) (Actor, error) {
	for a, n := range getActorNames() {
		if a != ActorUnknown && n == name {
			return a, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause(
		"actor",
		fmt.Errorf("%q is not a recognized actor kind", name),
	)
}

// Validate checks the actor kind is a defined value.
func (a Actor) Validate() error {
	if a != ActorSystem && a != ActorUser {
		return errs.NewValueIsInvalidErrorWithCause(
			"actor",
			fmt.Errorf("%d is not a valid actor kind", a),
		)
	}
	return nil
}

// String returns the wire name of the actor kind.
func (a Actor) String() string {
	if name, ok := getActorNames()[a]; ok {
		return name
	}
	return "unknown"
}

// Entry is one immutable audit record.
type Entry struct {
	id            uint
	orderID       kernel.UUID
	action        Action
	actor         Actor
	actorIdentity string
	previousValue string
	newValue      string
	detail        string
	occurredAt    time.Time

	isConstructed bool
}

// NewEntry creates an audit record for an order mutation. Previous and new
// values are human-readable snapshots (status names, payment outcomes),
// not ids.
func NewEntry(
	orderID kernel.UUID,
	action Action,
	actor Actor,
	actorIdentity, previousValue, newValue, detail string,
	occurredAt time.Time,
) (*Entry, error) {
	e := &Entry{
		action:        action,
		actor:         actor,
		actorIdentity: actorIdentity,
		previousValue: previousValue,
		newValue:      newValue,
		detail:        detail,
		occurredAt:    occurredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		orderID.Validate(),
		action.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	e.orderID = orderID
	return e, nil
}

// RestoreEntry reconstructs an entry from persistence.
func RestoreEntry(
	id uint,
	orderID kernel.UUID,
	action Action,
	actor Actor,
	actorIdentity, previousValue, newValue, detail string,
	occurredAt time.Time,
) (*Entry, error) {
	e, err := NewEntry(orderID, action, actor, actorIdentity, previousValue, newValue, detail, occurredAt)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the entry came from a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() uint { return e.id }

// OrderID returns the mutated order's identifier.
func (e *Entry) OrderID() kernel.UUID { return e.orderID }

// Action returns the recorded action kind.
func (e *Entry) Action() Action { return e.action }

// Actor returns the recorded actor kind.
func (e *Entry) Actor() Actor { return e.actor }

// ActorIdentity returns who performed the mutation ("system" or a user id).
func (e *Entry) ActorIdentity() string { return e.actorIdentity }

// PreviousValue returns the human-readable before value.
func (e *Entry) PreviousValue() string { return e.previousValue }

// NewValue returns the human-readable after value.
func (e *Entry) NewValue() string { return e.newValue }

// Detail returns the free-text detail.
func (e *Entry) Detail() string { return e.detail }

// OccurredAt returns the mutation timestamp.
func (e *Entry) OccurredAt() time.Time { return e.occurredAt }

// SetID assigns the persistence-generated identifier.
func (e *Entry) SetID(id uint) { e.id = id }
