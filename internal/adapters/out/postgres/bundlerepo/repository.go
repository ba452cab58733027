package bundlerepo

import (
	"context"
	"errors"
	"fmt"

	"ordering/internal/adapters/out/postgres/scopes"
	"ordering/internal/core/domain/model/bundle"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBundleRepository implements ports.BundleRepository using GORM.
type GormBundleRepository struct {
	db *gorm.DB
}

// NewGormBundleRepository creates a new GORM bundle repository.
func NewGormBundleRepository(db *gorm.DB) *GormBundleRepository {
	return &GormBundleRepository{db: db}
}

// Add inserts a new bundle and assigns its generated id to the aggregate.
func (r *GormBundleRepository) Add(ctx context.Context, aggregate *bundle.Bundle) error {
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

// Get retrieves a non-deleted bundle by id.
func (r *GormBundleRepository) Get(ctx context.Context, id uint) (*bundle.Bundle, error) {
	var dto BundleDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bundle", fmt.Sprintf("%d", id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves all non-deleted bundles ordered by id.
func (r *GormBundleRepository) List(ctx context.Context) ([]*bundle.Bundle, error) {
	var dtos []BundleDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bundles := make([]*bundle.Bundle, 0, len(dtos))
	for _, dto := range dtos {
		b, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		bundles = append(bundles, b)
	}

	return bundles, nil
}
