// Package orderrepo persists the order aggregate: DTO mapping plus the
// repository backing order reads and writes, including the reclamation
// sweep's candidate selection.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order. The display number
// is a database sequence, assigned on first insert and read back into the
// aggregate.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayNumber uint64    `gorm:"autoIncrement;uniqueIndex"`
	CustomerName  string
	CustomerPhone string
	NationalID    string
	ResourceID    *uint `gorm:"index"`
	BundleID      *uint
	StatusID      uint `gorm:"index"`
	PaymentStatus string
	CityID        uint
	CreatedAt     time.Time
	Deleted       bool
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		DisplayNumber: aggregate.DisplayNumber(),
		CustomerName:  aggregate.CustomerName(),
		CustomerPhone: aggregate.CustomerPhone(),
		NationalID:    aggregate.NationalID(),
		ResourceID:    aggregate.ResourceID(),
		BundleID:      aggregate.BundleID(),
		StatusID:      aggregate.StatusID(),
		PaymentStatus: aggregate.Payment().String(),
		CityID:        aggregate.CityID(),
		CreatedAt:     aggregate.CreatedAt(),
		Deleted:       aggregate.IsDeleted(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	payment, err := order.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.DisplayNumber,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.NationalID,
		dto.ResourceID,
		dto.BundleID,
		dto.StatusID,
		payment,
		dto.CityID,
		dto.CreatedAt,
		dto.Deleted,
	)
}
