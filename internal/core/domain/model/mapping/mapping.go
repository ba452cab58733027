// Package mapping models the configurable association between business
// events and workflow statuses. The mapping table is the indirection layer
// that lets operators rewire the workflow without a code change: an event
// may map to zero, one, or many statuses, and a status may carry several
// event tags at once.
package mapping

import (
	"errors"

	"ordering/internal/core/domain/model/event"
)

// ErrMappingIsNotConstructed is returned when a Mapping was not created via
// NewMapping or RestoreMapping.
var ErrMappingIsNotConstructed = errors.New("Mapping must be created via NewMapping or RestoreMapping")

// Mapping is one (event, status) association. Soft-deletable; the
// repository enforces that no duplicate non-deleted pair exists.
type Mapping struct {
	id       uint
	event    event.Event
	statusID uint
	deleted  bool

	isConstructed bool
}

// NewMapping creates an association between an event and a status id.
func NewMapping(ev event.Event, statusID uint) (*Mapping, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return &Mapping{
		event:         ev,
		statusID:      statusID,
		isConstructed: true,
	}, nil
}

// RestoreMapping reconstructs a mapping from persistence.
func RestoreMapping(id uint, ev event.Event, statusID uint, deleted bool) (*Mapping, error) {
	if err := ev.Validate(); err != nil {
		return nil, err
	}
	return &Mapping{
		id:            id,
		event:         ev,
		statusID:      statusID,
		deleted:       deleted,
		isConstructed: true,
	}, nil
}

// Validate ensures the mapping came from a constructor.
func (m *Mapping) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMappingIsNotConstructed
	}
	return nil
}

// ID returns the mapping identifier.
func (m *Mapping) ID() uint {
	return m.id
}

// Event returns the tagged event.
func (m *Mapping) Event() event.Event {
	return m.event
}

// StatusID returns the associated status id.
func (m *Mapping) StatusID() uint {
	return m.statusID
}

// IsDeleted reports whether the mapping has been soft-deleted.
func (m *Mapping) IsDeleted() bool {
	return m.deleted
}

// MarkDeleted soft-deletes the mapping.
func (m *Mapping) MarkDeleted() {
	m.deleted = true
}

// SetID assigns the persistence-generated identifier.
func (m *Mapping) SetID(id uint) {
	m.id = id
}
