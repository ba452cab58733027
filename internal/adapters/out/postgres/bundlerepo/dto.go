// Package bundlerepo persists the bundle catalog.
package bundlerepo

import "ordering/internal/core/domain/model/bundle"

// BundleDTO is the database representation of a plan bundle.
type BundleDTO struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	MonthlyPrice int64
	DataMB       int
	Minutes      int
	Deleted      bool
}

// TableName overrides GORM's default naming to use "bundles".
func (BundleDTO) TableName() string {
	return "bundles"
}

func fromDomain(aggregate *bundle.Bundle) BundleDTO {
	return BundleDTO{
		ID:           aggregate.ID(),
		Name:         aggregate.Name(),
		MonthlyPrice: aggregate.MonthlyPrice(),
		DataMB:       aggregate.DataMB(),
		Minutes:      aggregate.Minutes(),
		Deleted:      aggregate.IsDeleted(),
	}
}

func toDomain(dto BundleDTO) (*bundle.Bundle, error) {
	return bundle.RestoreBundle(dto.ID, dto.Name, dto.MonthlyPrice, dto.DataMB, dto.Minutes, dto.Deleted)
}
