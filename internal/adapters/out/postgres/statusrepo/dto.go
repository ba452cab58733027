// Package statusrepo persists the status catalog.
package statusrepo

import "ordering/internal/core/domain/model/status"

// StatusDTO is the database representation of a workflow status.
type StatusDTO struct {
	ID      uint `gorm:"primaryKey"`
	Name    string `gorm:"index"`
	Deleted bool
}

// TableName overrides GORM's default naming to use "statuses".
func (StatusDTO) TableName() string {
	return "statuses"
}

func fromDomain(aggregate *status.Status) StatusDTO {
	return StatusDTO{
		ID:      aggregate.ID(),
		Name:    aggregate.Name(),
		Deleted: aggregate.IsDeleted(),
	}
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	return status.RestoreStatus(dto.ID, dto.Name, dto.Deleted)
}
