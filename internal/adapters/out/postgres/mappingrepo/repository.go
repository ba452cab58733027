package mappingrepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/adapters/out/postgres/scopes"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/mapping"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMappingRepository implements ports.MappingRepository using GORM.
type GormMappingRepository struct {
	db *gorm.DB
}

// NewGormMappingRepository creates a new GORM mapping repository.
func NewGormMappingRepository(db *gorm.DB) *GormMappingRepository {
	return &GormMappingRepository{db: db}
}

// Add inserts a new mapping. A duplicate non-deleted (event, status) pair
// violates the registry invariant and is rejected.
func (r *GormMappingRepository) Add(ctx context.Context, aggregate *mapping.Mapping) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	exists, err := r.IsStatusMappedToEvent(ctx, aggregate.StatusID(), aggregate.Event())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewBusinessRuleError(
			"unique event/status mapping",
			fmt.Sprintf("event %s is already mapped to status %d", aggregate.Event(), aggregate.StatusID()),
		)
	}

	dto := fromDomain(aggregate)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SetID(dto.ID)
	return nil
}

// ResolveStatusesForEvent returns the status ids mapped to the event,
// ordered by status id ascending. Empty when the event is unconfigured.
func (r *GormMappingRepository) ResolveStatusesForEvent(ctx context.Context, ev event.Event) ([]uint, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}

	var statusIDs []uint
	err := r.db.WithContext(ctx).
		Model(&MappingDTO{}).
		Scopes(scopes.NotDeleted).
		Where("event = ?", ev.String()).
		Order("status_id").
		Pluck("status_id", &statusIDs).Error
	if err != nil {
		return nil, err
	}

	return statusIDs, nil
}

// FirstStatusForEvent returns the lowest mapped status id, with ok false
// when the event is unconfigured.
func (r *GormMappingRepository) FirstStatusForEvent(ctx context.Context, ev event.Event) (uint, bool, error) {
	if err := ev.Validate(); err != nil {
		return 0, false, err
	}

	var dto MappingDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		Where("event = ?", ev.String()).
		Order("status_id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return dto.StatusID, true, nil
}

// IsStatusMappedToEvent reports whether the status carries the event tag.
func (r *GormMappingRepository) IsStatusMappedToEvent(ctx context.Context, statusID uint, ev event.Event) (bool, error) {
	if err := ev.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&MappingDTO{}).
		Scopes(scopes.NotDeleted).
		Where("event = ? AND status_id = ?", ev.String(), statusID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// SoftDeleteForEvent soft-deletes the non-deleted pairs of the event with
// each given status id.
func (r *GormMappingRepository) SoftDeleteForEvent(ctx context.Context, ev event.Event, statusIDs []uint) error {
	if err := ev.Validate(); err != nil {
		return err
	}
	if len(statusIDs) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Model(&MappingDTO{}).
		Scopes(scopes.NotDeleted).
		Where("event = ? AND status_id IN ?", ev.String(), statusIDs).
		Update("deleted", true).Error
}
