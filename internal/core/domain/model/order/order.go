package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the lifecycle engine.
//
// Invariants:
//   - Must have a valid unique identifier and customer name
//   - At most one resource is attached; an attached resource is Sold and
//     points back to exactly this order
//   - Status and payment status mutate only through aggregate methods
//   - Soft-deleted orders hold no resource
type Order struct {
	// id is the opaque external identifier.
	id kernel.UUID

	// displayNumber is the sequential human-facing number, assigned by
	// persistence on first insert.
	displayNumber uint64

	customerName  string
	customerPhone string

	// nationalID arrives pre-encrypted from the boundary and is treated
	// as an opaque string. Never written to audit details in full.
	nationalID string

	resourceID *uint
	bundleID   *uint
	statusID   uint
	payment    PaymentStatus
	cityID     uint
	createdAt  time.Time
	deleted    bool

	isConstructed bool
}

// NewOrder creates an order in the given initial status with Unpaid payment
// status and no resource attached. The initial status is resolved by the
// lifecycle engine from the order-creation mapping before construction.
func NewOrder(id kernel.UUID, customerName, customerPhone, nationalID string, statusID, cityID uint, now time.Time) (*Order, error) {
	o := &Order{
		statusID:      statusID,
		payment:       Unpaid,
		cityID:        cityID,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	o.customerPhone = strings.TrimSpace(customerPhone)
	o.nationalID = nationalID
	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id kernel.UUID,
	displayNumber uint64,
	customerName, customerPhone, nationalID string,
	resourceID, bundleID *uint,
	statusID uint,
	payment PaymentStatus,
	cityID uint,
	createdAt time.Time,
	deleted bool,
) (*Order, error) {
	o := &Order{
		displayNumber: displayNumber,
		resourceID:    resourceID,
		bundleID:      bundleID,
		statusID:      statusID,
		payment:       payment,
		cityID:        cityID,
		createdAt:     createdAt,
		deleted:       deleted,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		payment.Validate(),
	); err != nil {
		return nil, err
	}

	o.customerPhone = strings.TrimSpace(customerPhone)
	o.nationalID = nationalID
	return o, nil
}

// Validate ensures the order came from a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the opaque external identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// DisplayNumber returns the sequential human-facing number.
func (o *Order) DisplayNumber() uint64 { return o.displayNumber }

// CustomerName returns the customer display name.
func (o *Order) CustomerName() string { return o.customerName }

// CustomerPhone returns the customer contact phone.
func (o *Order) CustomerPhone() string { return o.customerPhone }

// NationalID returns the opaque pre-encrypted national id.
func (o *Order) NationalID() string { return o.nationalID }

// ResourceID returns the attached resource id, nil when none is attached.
func (o *Order) ResourceID() *uint { return o.resourceID }

// BundleID returns the referenced bundle id, nil when none is referenced.
func (o *Order) BundleID() *uint { return o.bundleID }

// StatusID returns the current workflow status id.
func (o *Order) StatusID() uint { return o.statusID }

// Payment returns the payment status.
func (o *Order) Payment() PaymentStatus { return o.payment }

// CityID returns the referenced city id.
func (o *Order) CityID() uint { return o.cityID }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool { return o.deleted }

// HasResource reports whether a resource is currently attached.
func (o *Order) HasResource() bool { return o.resourceID != nil }

// AttachResource attaches a resource and optionally a bundle. Permitted
// only when no resource is currently attached; re-attachment must go
// through release first.
func (o *Order) AttachResource(resourceID uint, bundleID *uint) error {
	if o.resourceID != nil {
		return errs.NewBusinessRuleError(
			"single resource per order",
			"order already holds a resource",
		)
	}
	o.resourceID = &resourceID
	o.bundleID = bundleID
	return nil
}

// DetachResource removes the resource and bundle references. Used when the
// resource is released back to the pool.
func (o *Order) DetachResource() {
	o.resourceID = nil
	o.bundleID = nil
}

// ChangeStatus moves the order to the target workflow status.
func (o *Order) ChangeStatus(statusID uint) {
	o.statusID = statusID
}

// MarkPaid records a successful payment outcome.
func (o *Order) MarkPaid() {
	o.payment = Paid
}

// MarkPaymentFailed records a failed payment outcome.
func (o *Order) MarkPaymentFailed() {
	o.payment = PaymentFailed
}

// MarkDeleted soft-deletes the order. The caller must release the attached
// resource in the same transaction.
func (o *Order) MarkDeleted() {
	o.deleted = true
}

// SetDisplayNumber assigns the persistence-generated sequential number.
// Called once by the repository on first insert.
func (o *Order) SetDisplayNumber(n uint64) {
	o.displayNumber = n
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}
