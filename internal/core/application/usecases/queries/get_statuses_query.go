package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetStatusesQueryIsNotConstructed = errors.New(
	"GetStatusesQuery must be created via NewGetStatusesQuery constructor",
)

// GetStatusesQuery requests the non-deleted status catalog.
type GetStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusesQuery creates the query.
func NewGetStatusesQuery() GetStatusesQuery {
	return GetStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusesQueryIsNotConstructed)
}

// StatusRow is one status with the events currently mapped to it.
type StatusRow struct {
	ID     uint
	Name   string
	Events []string
}
