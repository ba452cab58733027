package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderAuditLogQueryHandler reads one order's audit trail.
type GetOrderAuditLogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAuditLogQueryHandler creates a handler for per-order audit
// reads.
func NewGetOrderAuditLogQueryHandler(db *gorm.DB) GetOrderAuditLogQueryHandler {
	return GetOrderAuditLogQueryHandler{db: db}
}

// Handle returns the order's entries, oldest first.
func (h GetOrderAuditLogQueryHandler) Handle(ctx context.Context, query GetOrderAuditLogQuery) ([]AuditLogRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]AuditLogRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			action,
			actor,
			actor_identity,
			previous_value,
			new_value,
			detail,
			occurred_at
		FROM audit_log_entries
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		row, scanErr := scanAuditRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// scanAuditRow maps one result row into an AuditLogRow. Shared with the
// filtered global view.
func scanAuditRow(scan func(dest ...any) error) (AuditLogRow, error) {
	var row AuditLogRow

	if err := scan(
		&row.ID,
		&row.OrderID,
		&row.Action,
		&row.Actor,
		&row.ActorIdentity,
		&row.PreviousValue,
		&row.NewValue,
		&row.Detail,
		&row.OccurredAt,
	); err != nil {
		return AuditLogRow{}, err
	}

	row.OccurredAt = row.OccurredAt.UTC()
	return row, nil
}
