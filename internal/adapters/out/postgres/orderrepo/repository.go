package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/adapters/out/postgres/scopes"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers modified aggregates with the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new order. The database assigns the sequential display
// number; it is read back into the aggregate via RETURNING.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SetDisplayNumber(dto.DisplayNumber)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. All mutable columns are written
// explicitly so that detaching a resource nulls the column out.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("CustomerName", "CustomerPhone", "NationalID", "ResourceID",
			"BundleID", "StatusID", "PaymentStatus", "CityID", "Deleted").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a non-deleted order by its external id.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByResource retrieves the non-deleted order holding the resource.
func (r *GormOrderRepository) GetByResource(ctx context.Context, resourceID uint) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		First(&dto, "resource_id = ?", resourceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order by resource", fmt.Sprintf("%d", resourceID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListReclaimable retrieves orders eligible for the reclamation sweep:
// creation-tagged status, not paid, resource attached, created before the
// cutoff. Releasing the resource makes the filter false, which is what
// keeps the sweep idempotent.
func (r *GormOrderRepository) ListReclaimable(ctx context.Context, statusIDs []uint, cutoff time.Time) ([]*order.Order, error) {
	if len(statusIDs) == 0 {
		return nil, nil
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Scopes(scopes.NotDeleted).
		Where("status_id IN ?", statusIDs).
		Where("payment_status <> ?", order.Paid.String()).
		Where("resource_id IS NOT NULL").
		Where("created_at < ?", cutoff).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
