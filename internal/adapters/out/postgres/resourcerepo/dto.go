// Package resourcerepo persists the resource pool. The allocation state is
// stored by wire name; UpdateIfAvailable is the compare-and-set that makes
// concurrent allocation race-safe.
package resourcerepo

import "ordering/internal/core/domain/model/resource"

// ResourceDTO is the database representation of a sellable resource.
// Prices are in minor currency units.
type ResourceDTO struct {
	ID       uint   `gorm:"primaryKey"`
	Number   string `gorm:"uniqueIndex"`
	State    string `gorm:"index"`
	Price    int64
	SetupFee int64
	Deleted  bool
}

// TableName overrides GORM's default naming to use "resources".
func (ResourceDTO) TableName() string {
	return "resources"
}

func fromDomain(aggregate *resource.Resource) ResourceDTO {
	return ResourceDTO{
		ID:       aggregate.ID(),
		Number:   aggregate.Number(),
		State:    aggregate.State().String(),
		Price:    aggregate.Price(),
		SetupFee: aggregate.SetupFee(),
		Deleted:  aggregate.IsDeleted(),
	}
}

func toDomain(dto ResourceDTO) (*resource.Resource, error) {
	state, err := resource.ParseAllocationState(dto.State)
	if err != nil {
		return nil, err
	}
	return resource.RestoreResource(dto.ID, dto.Number, state, dto.Price, dto.SetupFee, dto.Deleted)
}
