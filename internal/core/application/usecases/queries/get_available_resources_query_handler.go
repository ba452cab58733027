package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAvailableResourcesQueryHandler lists resources open for allocation.
type GetAvailableResourcesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableResourcesQueryHandler creates a handler for pool reads.
func NewGetAvailableResourcesQueryHandler(db *gorm.DB) GetAvailableResourcesQueryHandler {
	return GetAvailableResourcesQueryHandler{db: db}
}

// Handle returns available, non-deleted resources ordered by number.
func (h GetAvailableResourcesQueryHandler) Handle(ctx context.Context, query GetAvailableResourcesQuery) ([]ResourceRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	resources := make([]ResourceRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			price,
			setup_fee
		FROM resources
		WHERE state = ? AND deleted = FALSE
		ORDER BY number
	`, "available").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ResourceRow
		if err = rows.Scan(&row.ID, &row.Number, &row.Price, &row.SetupFee); err != nil {
			return nil, err
		}
		resources = append(resources, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}
