package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order, optionally
// allocating a resource and referencing a bundle at creation time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerPhone string
	nationalID    string
	cityID        uint
	resourceID    *uint
	bundleID      *uint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The national id arrives pre-encrypted and is treated as opaque.
// resourceID and bundleID are optional; a bundle without a resource is
// rejected since bundles ride on an allocated number.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, nationalID string,
	cityID uint,
	resourceID, bundleID *uint,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if bundleID != nil && resourceID == nil {
		return CreateOrderCommand{}, errs.NewValueIsInvalidError("bundle requires a resource")
	}

	cmd.customerPhone = strings.TrimSpace(customerPhone)
	cmd.nationalID = nationalID
	cmd.cityID = cityID
	cmd.resourceID = resourceID
	cmd.bundleID = bundleID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the external identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the customer display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the customer contact phone.
func (c CreateOrderCommand) CustomerPhone() string { return c.customerPhone }

// NationalID returns the opaque pre-encrypted national id.
func (c CreateOrderCommand) NationalID() string { return c.nationalID }

// CityID returns the referenced city id.
func (c CreateOrderCommand) CityID() uint { return c.cityID }

// ResourceID returns the requested resource id, nil when none requested.
func (c CreateOrderCommand) ResourceID() *uint { return c.resourceID }

// BundleID returns the requested bundle id, nil when none requested.
func (c CreateOrderCommand) BundleID() *uint { return c.bundleID }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.customerName = strings.TrimSpace(name)
	return nil
}
