// Package resource models the allocatable inventory pool: sellable numbers
// with an Available/Sold allocation state. Only the lifecycle engine and
// the reclamation sweep mutate allocation state, always inside one
// transactional boundary.
package resource

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrResourceIsNotConstructed is returned when a Resource was not created
// via NewResource or RestoreResource.
var ErrResourceIsNotConstructed = errors.New("Resource must be created via NewResource or RestoreResource")

// AllocationState is the availability of a resource for sale.
//
// Invariant: Sold is equivalent to being referenced by exactly one
// non-deleted order; Available implies no order references the resource.
type AllocationState int

const (
	// StateUnknown catches uninitialized values.
	StateUnknown AllocationState = iota

	// Available means the resource can be attached to an order.
	Available

	// Sold means the resource is held by exactly one order.
	Sold
)

func getStateNames() map[AllocationState]string {
	return map[AllocationState]string{
		StateUnknown: "unknown",
		Available:    "available",
		Sold:         "sold",
	}
}

// ParseAllocationState resolves an allocation state by its wire name, as
// stored in persistence.
func ParseAllocationState(name string) (AllocationState, error) {
	for s, n := range getStateNames() {
		if s != StateUnknown && n == name {
			return s, nil
		}
	}
	return StateUnknown, errs.NewValueIsInvalidErrorWithCause(
		"allocation state",
		fmt.Errorf("%q is not a recognized allocation state", name),
	)
}

// Validate checks the allocation state is Available or Sold.
func (s AllocationState) Validate() error {
	if s != Available && s != Sold {
		return errs.NewValueIsInvalidErrorWithCause(
			"allocation state",
			fmt.Errorf("%d is not a valid allocation state", s),
		)
	}
	return nil
}

// String returns the wire name of the state.
func (s AllocationState) String() string {
	if name, ok := getStateNames()[s]; ok {
		return name
	}
	return "unknown"
}

// Resource is one sellable inventory item.
type Resource struct {
	id       uint
	number   string
	state    AllocationState
	price    int64
	setupFee int64
	deleted  bool

	isConstructed bool
}

// NewResource creates an available resource with its external number and
// price fields (minor currency units).
func NewResource(number string, price, setupFee int64) (*Resource, error) {
	r := &Resource{
		state:         Available,
		price:         price,
		setupFee:      setupFee,
		isConstructed: true,
	}
	if err := r.setNumber(number); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreResource reconstructs a resource from persistence.
func RestoreResource(id uint, number string, state AllocationState, price, setupFee int64, deleted bool) (*Resource, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}
	r := &Resource{
		id:            id,
		state:         state,
		price:         price,
		setupFee:      setupFee,
		deleted:       deleted,
		isConstructed: true,
	}
	if err := r.setNumber(number); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate ensures the resource came from a constructor.
func (r *Resource) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrResourceIsNotConstructed
	}
	return nil
}

// ID returns the resource identifier.
func (r *Resource) ID() uint {
	return r.id
}

// Number returns the external sellable number.
func (r *Resource) Number() string {
	return r.number
}

// State returns the current allocation state.
func (r *Resource) State() AllocationState {
	return r.state
}

// Price returns the sale price in minor currency units.
func (r *Resource) Price() int64 {
	return r.price
}

// SetupFee returns the one-time setup fee in minor currency units.
func (r *Resource) SetupFee() int64 {
	return r.setupFee
}

// IsDeleted reports whether the resource has been soft-deleted.
func (r *Resource) IsDeleted() bool {
	return r.deleted
}

// IsAvailable reports whether the resource can be allocated.
func (r *Resource) IsAvailable() bool {
	return r.state == Available && !r.deleted
}

// Reserve marks the resource as Sold. Fails with a BusinessRuleError when
// the resource is not available; a losing concurrent allocation attempt
// surfaces this error rather than overwriting the winner.
func (r *Resource) Reserve() error {
	if !r.IsAvailable() {
		return errs.NewBusinessRuleError(
			"resource exclusivity",
			fmt.Sprintf("resource %s is not available", r.number),
		)
	}
	r.state = Sold
	return nil
}

// Release returns the resource to the pool.
func (r *Resource) Release() {
	r.state = Available
}

// SetID assigns the persistence-generated identifier.
func (r *Resource) SetID(id uint) {
	r.id = id
}

func (r *Resource) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("resource number")
	}
	r.number = number
	return nil
}
