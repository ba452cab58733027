package queries

import (
	"context"

	"ordering/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GetAuditLogQueryHandler reads the filtered, paginated global audit view.
type GetAuditLogQueryHandler struct {
	db *gorm.DB
}

// NewGetAuditLogQueryHandler creates a handler for global audit reads.
func NewGetAuditLogQueryHandler(db *gorm.DB) GetAuditLogQueryHandler {
	return GetAuditLogQueryHandler{db: db}
}

// Handle returns matching entries, newest first.
func (h GetAuditLogQueryHandler) Handle(ctx context.Context, query GetAuditLogQuery) ([]AuditLogRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
		WHERE 1=1`
	args := make([]any, 0, 6)

	if query.Actor() != audit.ActorUnknown {
		sql += " AND actor = ?"
		args = append(args, query.Actor().String())
	}
	if query.Action() != audit.ActionUnknown {
		sql += " AND action = ?"
		args = append(args, query.Action().String())
	}
	if !query.From().IsZero() {
		sql += " AND occurred_at >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		sql += " AND occurred_at < ?"
		args = append(args, query.To())
	}

	sql += " ORDER BY occurred_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, query.Limit(), query.Offset())

	entries := make([]AuditLogRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
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
