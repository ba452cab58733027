package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a manual status transition requested
// by an operator.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	targetStatusID uint
	actorIdentity  string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a manual transition command. The
// actor identity is recorded in the audit trail.
func NewChangeOrderStatusCommand(orderID kernel.UUID, targetStatusID uint, actorIdentity string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if targetStatusID == 0 {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("target status id")
	}
	if strings.TrimSpace(actorIdentity) == "" {
		return ChangeOrderStatusCommand{}, errs.NewValueIsRequiredError("actor identity")
	}

	cmd.orderID = orderID
	cmd.targetStatusID = targetStatusID
	cmd.actorIdentity = strings.TrimSpace(actorIdentity)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

// TargetStatusID returns the requested status id.
func (c ChangeOrderStatusCommand) TargetStatusID() uint { return c.targetStatusID }

// ActorIdentity returns who requested the transition.
func (c ChangeOrderStatusCommand) ActorIdentity() string { return c.actorIdentity }
