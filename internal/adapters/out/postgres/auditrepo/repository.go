package auditrepo

import (
	"context"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

const defaultPageSize = 50

// GormAuditRepository implements ports.AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Add appends an entry after verifying the referenced order exists. The
// check includes soft-deleted orders: the deletion entry itself is written
// after the order is marked deleted.
func (r *GormAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", entry.OrderID().Bytes()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", entry.OrderID().String())
	}

	dto := fromDomain(entry)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	entry.SetID(dto.ID)
	return nil
}

// ListByOrder returns the order's entries oldest first, insertion order
// breaking timestamp ties.
func (r *GormAuditRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return mapEntries(dtos)
}

// List returns entries matching the filter, newest first.
func (r *GormAuditRepository) List(ctx context.Context, filter ports.AuditFilter) ([]*audit.Entry, error) {
	query := r.db.WithContext(ctx).Model(&EntryDTO{})

	if filter.Actor != audit.ActorUnknown {
		query = query.Where("actor = ?", filter.Actor.String())
	}
	if filter.Action != audit.ActionUnknown {
		query = query.Where("action = ?", filter.Action.String())
	}
	if !filter.From.IsZero() {
		query = query.Where("occurred_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("occurred_at < ?", filter.To)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var dtos []EntryDTO
	err := query.
		Order("occurred_at DESC, id DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return mapEntries(dtos)
}

func mapEntries(dtos []EntryDTO) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
