package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"

	"github.com/google/uuid"
)

var ErrGetOrderAuditLogQueryIsNotConstructed = errors.New(
	"GetOrderAuditLogQuery must be created via NewGetOrderAuditLogQuery constructor",
)

// GetOrderAuditLogQuery requests one order's audit trail in chronological
// order.
type GetOrderAuditLogQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderAuditLogQuery creates the query for a validated order id.
func NewGetOrderAuditLogQuery(orderID kernel.UUID) (GetOrderAuditLogQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAuditLogQuery{}, err
	}
	return GetOrderAuditLogQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditLogQueryIsNotConstructed)
}

// OrderID returns the order whose trail is requested.
func (q GetOrderAuditLogQuery) OrderID() kernel.UUID { return q.orderID }

// AuditLogRow is one audit entry in a query response. Previous and new
// values are the human-readable snapshots taken at write time.
type AuditLogRow struct {
	ID            uint
	OrderID       uuid.UUID
	Action        string
	Actor         string
	ActorIdentity string
	PreviousValue string
	NewValue      string
	Detail        string
	OccurredAt    time.Time
}
