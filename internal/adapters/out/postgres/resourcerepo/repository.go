package resourcerepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/adapters/out/postgres/scopes"
	"ordering/internal/core/domain/model/resource"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormResourceRepository implements ports.ResourceRepository using GORM.
type GormResourceRepository struct {
	db *gorm.DB
}

// NewGormResourceRepository creates a new GORM resource repository.
func NewGormResourceRepository(db *gorm.DB) *GormResourceRepository {
	return &GormResourceRepository{db: db}
}

// Add inserts a new resource and assigns its generated id to the aggregate.
func (r *GormResourceRepository) Add(ctx context.Context, aggregate *resource.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SetID(dto.ID)
	return nil
}

// Get retrieves a non-deleted resource by id.
func (r *GormResourceRepository) Get(ctx context.Context, id uint) (*resource.Resource, error) {
	var dto ResourceDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resource", fmt.Sprintf("%d", id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNumber retrieves a non-deleted resource by its external number.
func (r *GormResourceRepository) GetByNumber(ctx context.Context, number string) (*resource.Resource, error) {
	var dto ResourceDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "number = ?", number).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("resource", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListAvailable retrieves all allocatable resources ordered by number.
func (r *GormResourceRepository) ListAvailable(ctx context.Context) ([]*resource.Resource, error) {
	var dtos []ResourceDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		Where("state = ?", resource.Available.String()).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	resources := make([]*resource.Resource, 0, len(dtos))
	for _, dto := range dtos {
		res, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		resources = append(resources, res)
	}

	return resources, nil
}

// Update saves an existing resource unconditionally. Used for releases and
// catalog edits; allocation must go through UpdateIfAvailable.
func (r *GormResourceRepository) Update(ctx context.Context, aggregate *resource.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ResourceDTO{}).
		Where("id = ?", dto.ID).
		Select("Number", "State", "Price", "SetupFee", "Deleted").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("resource", fmt.Sprintf("%d", aggregate.ID()))
	}

	return nil
}

// UpdateIfAvailable persists the Sold state only if the row is still
// Available — a compare-and-set on the allocation state. Losing a
// concurrent allocation race surfaces as a BusinessRuleError, never a
// silent overwrite.
func (r *GormResourceRepository) UpdateIfAvailable(ctx context.Context, aggregate *resource.Resource) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ResourceDTO{}).
		Where("id = ? AND state = ? AND deleted = FALSE", aggregate.ID(), resource.Available.String()).
		Update("state", aggregate.State().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewBusinessRuleError(
			"resource exclusivity",
			fmt.Sprintf("resource %s was taken by a concurrent allocation", aggregate.Number()),
		)
	}

	return nil
}
