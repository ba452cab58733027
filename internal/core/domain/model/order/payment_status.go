package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// PaymentStatus tracks the payment outcome of an order, independent of the
// configurable workflow status.
type PaymentStatus int

const (
	// PaymentUnknown catches uninitialized values.
	PaymentUnknown PaymentStatus = iota

	// Unpaid is the initial payment status.
	Unpaid

	// Paid means a successful payment notification was applied.
	Paid

	// PaymentFailed means the last payment notification reported failure.
	PaymentFailed
)

func getPaymentStatusNames() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		Unpaid:         "unpaid",
		Paid:           "paid",
		PaymentFailed:  "payment_failed",
	}
}

// ParsePaymentStatus resolves a payment status by its wire name, as stored
// in persistence.
func ParsePaymentStatus(name string) (PaymentStatus, error) {
	for p, n := range getPaymentStatusNames() {
		if p != PaymentUnknown && n == name {
			return p, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a recognized payment status", name),
	)
}

// Validate checks the payment status is a defined value.
func (p PaymentStatus) Validate() error {
	if p != Unpaid && p != Paid && p != PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the wire name of the payment status.
func (p PaymentStatus) String() string {
	if name, ok := getPaymentStatusNames()[p]; ok {
		return name
	}
	return "unknown"
}
