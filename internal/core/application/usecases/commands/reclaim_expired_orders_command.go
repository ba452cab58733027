package commands

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrReclaimExpiredOrdersCommandIsNotConstructed = errors.New(
	"ReclaimExpiredOrdersCommand must be created via NewReclaimExpiredOrdersCommand constructor",
)

// ReclaimExpiredOrdersCommand triggers one reclamation sweep.
type ReclaimExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReclaimExpiredOrdersCommand creates a sweep command.
func NewReclaimExpiredOrdersCommand() ReclaimExpiredOrdersCommand {
	return ReclaimExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReclaimExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReclaimExpiredOrdersCommandIsNotConstructed)
}

// ReclaimedOrder is one row of the sweep summary, for operational
// visibility.
type ReclaimedOrder struct {
	OrderID        string
	DisplayNumber  uint64
	ResourceNumber string
	OverdueMinutes int
}
