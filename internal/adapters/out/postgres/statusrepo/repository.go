package statusrepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/adapters/out/postgres/scopes"
	"ordering/internal/core/domain/model/status"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements ports.StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Add inserts a new status and assigns its generated id to the aggregate.
func (r *GormStatusRepository) Add(ctx context.Context, aggregate *status.Status) error {
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

// Update saves a rename or soft-delete of an existing status.
func (r *GormStatusRepository) Update(ctx context.Context, aggregate *status.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StatusDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "Deleted").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", fmt.Sprintf("%d", aggregate.ID()))
	}

	return nil
}

// Get retrieves a non-deleted status by id.
func (r *GormStatusRepository) Get(ctx context.Context, id uint) (*status.Status, error) {
	var dto StatusDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", fmt.Sprintf("%d", id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a non-deleted status by its display name.
func (r *GormStatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	var dto StatusDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("status", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves all non-deleted statuses ordered by id.
func (r *GormStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	var dtos []StatusDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]*status.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}

// GetOrCreateByName returns the non-deleted status with the given name,
// creating it when absent. Backs the lazily-created default and fallback
// statuses.
func (r *GormStatusRepository) GetOrCreateByName(ctx context.Context, name string) (*status.Status, error) {
	existing, err := r.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	created, err := status.NewStatus(name)
	if err != nil {
		return nil, err
	}
	if err = r.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
