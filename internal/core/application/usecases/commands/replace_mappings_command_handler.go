package commands

import (
	"context"
	"slices"

	"ordering/internal/core/domain/model/mapping"
)

// ReplaceMappingsCommandHandler rewires one event's status set with a
// diff-based bulk replace: additions are requested minus existing, removals
// are existing minus requested, both applied in one transaction. The
// operation is idempotent — repeating it with the same set reports zero
// changes — and all-or-nothing: an unknown status id aborts the whole
// update so a malformed request never half-configures an event.
type ReplaceMappingsCommandHandler struct {
	uowFactory MappingUoWFactory
}

// NewReplaceMappingsCommandHandler creates a handler for mapping
// configuration.
func NewReplaceMappingsCommandHandler(uowFactory MappingUoWFactory) ReplaceMappingsCommandHandler {
	return ReplaceMappingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the replace and reports how many pairs were added and
// removed.
func (h ReplaceMappingsCommandHandler) Handle(ctx context.Context, cmd ReplaceMappingsCommand) (mapping.ReplaceResult, error) {
	if err := cmd.Validate(); err != nil {
		return mapping.ReplaceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return mapping.ReplaceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()
	mappingRepo := uow.MappingRepository()

	// Every requested status must exist and not be soft-deleted before
	// anything is written.
	for _, id := range cmd.StatusIDs() {
		if _, err := statusRepo.Get(ctx, id); err != nil {
			return mapping.ReplaceResult{}, err
		}
	}

	existing, err := mappingRepo.ResolveStatusesForEvent(ctx, cmd.Event())
	if err != nil {
		return mapping.ReplaceResult{}, err
	}

	toAdd := make([]uint, 0, len(cmd.StatusIDs()))
	for _, id := range cmd.StatusIDs() {
		if !slices.Contains(existing, id) {
			toAdd = append(toAdd, id)
		}
	}

	toRemove := make([]uint, 0, len(existing))
	for _, id := range existing {
		if !slices.Contains(cmd.StatusIDs(), id) {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range toAdd {
		m, mapErr := mapping.NewMapping(cmd.Event(), id)
		if mapErr != nil {
			return mapping.ReplaceResult{}, mapErr
		}
		if mapErr = mappingRepo.Add(ctx, m); mapErr != nil {
			return mapping.ReplaceResult{}, mapErr
		}
	}

	if len(toRemove) > 0 {
		if err = mappingRepo.SoftDeleteForEvent(ctx, cmd.Event(), toRemove); err != nil {
			return mapping.ReplaceResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return mapping.ReplaceResult{}, err
	}

	return mapping.ReplaceResult{Added: len(toAdd), Removed: len(toRemove)}, nil
}
