// Package auditrepo persists the append-only audit trail. Entries are
// immutable: the repository exposes Add and reads, nothing else. Action and
// actor kinds are stored by wire name, previous/new values are the
// human-readable snapshots taken at write time.
package auditrepo

import (
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is the database representation of one audit record.
type EntryDTO struct {
	ID            uint      `gorm:"primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	Action        string    `gorm:"index"`
	Actor         string    `gorm:"index"`
	ActorIdentity string
	PreviousValue string
	NewValue      string
	Detail        string
	OccurredAt    time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "audit_log_entries".
func (EntryDTO) TableName() string {
	return "audit_log_entries"
}

func fromDomain(entry *audit.Entry) EntryDTO {
	return EntryDTO{
		ID:            entry.ID(),
		OrderID:       entry.OrderID().Bytes(),
		Action:        entry.Action().String(),
		Actor:         entry.Actor().String(),
		ActorIdentity: entry.ActorIdentity(),
		PreviousValue: entry.PreviousValue(),
		NewValue:      entry.NewValue(),
		Detail:        entry.Detail(),
		OccurredAt:    entry.OccurredAt(),
	}
}

func toDomain(dto EntryDTO) (*audit.Entry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	action, err := audit.ParseAction(dto.Action)
	if err != nil {
		return nil, err
	}

	actor, err := audit.ParseActor(dto.Actor)
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		dto.ID,
		orderID,
		action,
		actor,
		dto.ActorIdentity,
		dto.PreviousValue,
		dto.NewValue,
		dto.Detail,
		dto.OccurredAt,
	)
}
