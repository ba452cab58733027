package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an explicit order deletion request.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	actorIdentity string

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a deletion command.
func NewDeleteOrderCommand(orderID kernel.UUID, actorIdentity string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	if actorIdentity == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("actor identity")
	}

	cmd.orderID = orderID
	cmd.actorIdentity = actorIdentity
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c DeleteOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ActorIdentity returns who requested the deletion.
func (c DeleteOrderCommand) ActorIdentity() string { return c.actorIdentity }
