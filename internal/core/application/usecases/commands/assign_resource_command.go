package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAssignResourceCommandIsNotConstructed = errors.New(
	"AssignResourceCommand must be created via NewAssignResourceCommand constructor",
)

// AssignResourceCommand represents a request to attach a resource (and
// optionally a bundle) to an existing order.
type AssignResourceCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	resourceID    uint
	bundleID      *uint
	actorIdentity string

	guard guard.ConstructorGuard
}

// NewAssignResourceCommand creates a resource assignment command.
func NewAssignResourceCommand(orderID kernel.UUID, resourceID uint, bundleID *uint, actorIdentity string) (AssignResourceCommand, error) {
	cmd := AssignResourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return AssignResourceCommand{}, err
	}
	if resourceID == 0 {
		return AssignResourceCommand{}, errs.NewValueIsRequiredError("resource id")
	}
	if actorIdentity == "" {
		return AssignResourceCommand{}, errs.NewValueIsRequiredError("actor identity")
	}

	cmd.orderID = orderID
	cmd.resourceID = resourceID
	cmd.bundleID = bundleID
	cmd.actorIdentity = actorIdentity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignResourceCommand) Validate() error {
	return c.guard.Validate(ErrAssignResourceCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AssignResourceCommand) OrderID() kernel.UUID { return c.orderID }

// ResourceID returns the requested resource id.
func (c AssignResourceCommand) ResourceID() uint { return c.resourceID }

// BundleID returns the requested bundle id, nil when none requested.
func (c AssignResourceCommand) BundleID() *uint { return c.bundleID }

// ActorIdentity returns who requested the assignment.
func (c AssignResourceCommand) ActorIdentity() string { return c.actorIdentity }
