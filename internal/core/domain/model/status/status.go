// Package status models the admin-defined workflow states an order can
// occupy. Statuses are pure data: behavior lives in the lifecycle engine,
// which consults the mapping registry to decide what a status means.
package status

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrStatusIsNotConstructed is returned when a Status was not created via
// NewStatus or RestoreStatus.
var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus or RestoreStatus")

// Status is a named workflow state. Names are unique among non-deleted
// statuses; deletion is a soft flag so audit history stays resolvable.
type Status struct {
	id      uint
	name    string
	deleted bool

	isConstructed bool
}

// NewStatus creates a status with a validated display name. The id is zero
// until assigned by persistence.
func NewStatus(name string) (*Status, error) {
	s := &Status{isConstructed: true}
	if err := s.setName(name); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreStatus reconstructs a status from persistence.
func RestoreStatus(id uint, name string, deleted bool) (*Status, error) {
	s := &Status{
		id:            id,
		deleted:       deleted,
		isConstructed: true,
	}
	if err := s.setName(name); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the status came from a constructor.
func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

// ID returns the status identifier (zero before first persistence).
func (s *Status) ID() uint {
	return s.id
}

// Name returns the display name.
func (s *Status) Name() string {
	return s.name
}

// IsDeleted reports whether the status has been soft-deleted.
func (s *Status) IsDeleted() bool {
	return s.deleted
}

// Rename changes the display name. Audit entries snapshot names at write
// time, so renames never rewrite history.
func (s *Status) Rename(name string) error {
	return s.setName(name)
}

// MarkDeleted soft-deletes the status.
func (s *Status) MarkDeleted() {
	s.deleted = true
}

// SetID assigns the persistence-generated identifier. Called once by the
// repository on first insert.
func (s *Status) SetID(id uint) {
	s.id = id
}

func (s *Status) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("status name")
	}
	s.name = name
	return nil
}
