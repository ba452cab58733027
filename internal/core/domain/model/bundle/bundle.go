// Package bundle models plan metadata optionally referenced by an order.
// Bundles are state-free catalog data.
package bundle

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrBundleIsNotConstructed is returned when a Bundle was not created via
// NewBundle or RestoreBundle.
var ErrBundleIsNotConstructed = errors.New("Bundle must be created via NewBundle or RestoreBundle")

// Bundle is a sellable plan: name, monthly price and allowances.
type Bundle struct {
	id           uint
	name         string
	monthlyPrice int64
	dataMB       int
	minutes      int
	deleted      bool

	isConstructed bool
}

// NewBundle creates a bundle with a validated name.
func NewBundle(name string, monthlyPrice int64, dataMB, minutes int) (*Bundle, error) {
	b := &Bundle{
		monthlyPrice:  monthlyPrice,
		dataMB:        dataMB,
		minutes:       minutes,
		isConstructed: true,
	}
	if err := b.setName(name); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreBundle reconstructs a bundle from persistence.
func RestoreBundle(id uint, name string, monthlyPrice int64, dataMB, minutes int, deleted bool) (*Bundle, error) {
	b := &Bundle{
		id:            id,
		monthlyPrice:  monthlyPrice,
		dataMB:        dataMB,
		minutes:       minutes,
		deleted:       deleted,
		isConstructed: true,
	}
	if err := b.setName(name); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate ensures the bundle came from a constructor.
func (b *Bundle) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBundleIsNotConstructed
	}
	return nil
}

// ID returns the bundle identifier.
func (b *Bundle) ID() uint { return b.id }

// Name returns the plan name.
func (b *Bundle) Name() string { return b.name }

// MonthlyPrice returns the recurring price in minor currency units.
func (b *Bundle) MonthlyPrice() int64 { return b.monthlyPrice }

// DataMB returns the monthly data allowance.
func (b *Bundle) DataMB() int { return b.dataMB }

// Minutes returns the monthly voice allowance.
func (b *Bundle) Minutes() int { return b.minutes }

// IsDeleted reports whether the bundle has been soft-deleted.
func (b *Bundle) IsDeleted() bool { return b.deleted }

// SetID assigns the persistence-generated identifier.
func (b *Bundle) SetID(id uint) { b.id = id }

func (b *Bundle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("bundle name")
	}
	b.name = name
	return nil
}
