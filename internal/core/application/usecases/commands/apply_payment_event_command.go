package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrApplyPaymentEventCommandIsNotConstructed = errors.New(
	"ApplyPaymentEventCommand must be created via NewApplyPaymentEventCommand constructor",
)

// PaymentOutcome is the result reported by a payment notification.
type PaymentOutcome string

const (
	OutcomePaid   PaymentOutcome = "paid"
	OutcomeFailed PaymentOutcome = "payment_failed"
)

// ParsePaymentOutcome validates an outcome string at the boundary.
func ParsePaymentOutcome(s string) (PaymentOutcome, error) {
	switch PaymentOutcome(s) {
	case OutcomePaid:
		return OutcomePaid, nil
	case OutcomeFailed:
		return OutcomeFailed, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment outcome",
			fmt.Errorf("%q is not a recognized outcome", s),
		)
	}
}

// ApplyPaymentEventCommand represents a payment-outcome notification for an
// order: succeeded or failed, with the gateway reference for the audit trail.
type ApplyPaymentEventCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	outcome   PaymentOutcome
	reference string

	guard guard.ConstructorGuard
}

// NewApplyPaymentEventCommand creates a command carrying a payment outcome.
func NewApplyPaymentEventCommand(orderID kernel.UUID, outcome PaymentOutcome, reference string) (ApplyPaymentEventCommand, error) {
	cmd := ApplyPaymentEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return ApplyPaymentEventCommand{}, err
	}
	if outcome != OutcomePaid && outcome != OutcomeFailed {
		return ApplyPaymentEventCommand{}, errs.NewValueIsInvalidError("payment outcome")
	}

	cmd.orderID = orderID
	cmd.outcome = outcome
	cmd.reference = reference
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentEventCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c ApplyPaymentEventCommand) OrderID() kernel.UUID { return c.orderID }

// Outcome returns the reported payment outcome.
func (c ApplyPaymentEventCommand) Outcome() PaymentOutcome { return c.outcome }

// Reference returns the payment gateway reference.
func (c ApplyPaymentEventCommand) Reference() string { return c.reference }
