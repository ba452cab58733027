package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrGetAvailableResourcesQueryIsNotConstructed = errors.New(
	"GetAvailableResourcesQuery must be created via NewGetAvailableResourcesQuery constructor",
)

// GetAvailableResourcesQuery requests the allocatable part of the resource
// pool.
type GetAvailableResourcesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableResourcesQuery creates the query.
func NewGetAvailableResourcesQuery() GetAvailableResourcesQuery {
	return GetAvailableResourcesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableResourcesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableResourcesQueryIsNotConstructed)
}

// ResourceRow is one available resource in a query response. Prices are in
// minor currency units.
type ResourceRow struct {
	ID       uint
	Number   string
	Price    int64
	SetupFee int64
}
