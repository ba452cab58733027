// Package mappingrepo persists the event/status mapping table. Events are
// stored by wire name; resolution order is status id ascending, which is
// the deterministic rule for events mapped to several statuses.
package mappingrepo

import (
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/mapping"
)

// MappingDTO is the database representation of one (event, status) pair.
type MappingDTO struct {
	ID       uint   `gorm:"primaryKey"`
	Event    string `gorm:"index"`
	StatusID uint   `gorm:"index"`
	Deleted  bool
}

// TableName overrides GORM's default naming to use "mappings".
func (MappingDTO) TableName() string {
	return "mappings"
}

func fromDomain(aggregate *mapping.Mapping) MappingDTO {
	return MappingDTO{
		ID:       aggregate.ID(),
		Event:    aggregate.Event().String(),
		StatusID: aggregate.StatusID(),
		Deleted:  aggregate.IsDeleted(),
	}
}

func toDomain(dto MappingDTO) (*mapping.Mapping, error) {
	ev, err := event.ParseEvent(dto.Event)
	if err != nil {
		return nil, err
	}
	return mapping.RestoreMapping(dto.ID, ev, dto.StatusID, dto.Deleted)
}
