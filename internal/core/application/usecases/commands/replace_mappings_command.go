package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/event"
	"ordering/internal/pkg/guard"
)

var ErrReplaceMappingsCommandIsNotConstructed = errors.New(
	"ReplaceMappingsCommand must be created via NewReplaceMappingsCommand constructor",
)

// ReplaceMappingsCommand represents a privileged bulk rewiring of one
// event's status set.
type ReplaceMappingsCommand struct { //nolint:recvcheck //using for validation
	event     event.Event
	statusIDs []uint

	guard guard.ConstructorGuard
}

// NewReplaceMappingsCommand creates a bulk replace command. The status id
// list may be empty, which unmaps the event entirely. Duplicates in the
// requested list collapse to one.
func NewReplaceMappingsCommand(ev event.Event, statusIDs []uint) (ReplaceMappingsCommand, error) {
	cmd := ReplaceMappingsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := ev.Validate(); err != nil {
		return ReplaceMappingsCommand{}, err
	}

	deduped := make([]uint, 0, len(statusIDs))
	for _, id := range statusIDs {
		if !slices.Contains(deduped, id) {
			deduped = append(deduped, id)
		}
	}
	slices.Sort(deduped)

	cmd.event = ev
	cmd.statusIDs = deduped
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceMappingsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceMappingsCommandIsNotConstructed)
}

// Event returns the event being rewired.
func (c ReplaceMappingsCommand) Event() event.Event { return c.event }

// StatusIDs returns the requested status set, deduplicated and sorted.
func (c ReplaceMappingsCommand) StatusIDs() []uint { return c.statusIDs }
