package queries

import (
	"context"

	"ordering/internal/core/domain/model/event"

	"gorm.io/gorm"
)

// GetStatusesQueryHandler lists the status catalog with the event tags
// each status currently carries, giving operators a view of the workflow
// wiring.
type GetStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusesQueryHandler creates a handler for status catalog reads.
func NewGetStatusesQueryHandler(db *gorm.DB) GetStatusesQueryHandler {
	return GetStatusesQueryHandler{db: db}
}

// Handle returns non-deleted statuses ordered by id, each with its mapped
// events.
func (h GetStatusesQueryHandler) Handle(ctx context.Context, query GetStatusesQuery) ([]StatusRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]StatusRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			m.event
		FROM statuses s
		LEFT JOIN mappings m ON m.status_id = s.id AND m.deleted = FALSE
		WHERE s.deleted = FALSE
		ORDER BY s.id, m.event
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uint
		var name string
		var eventName *string

		if err = rows.Scan(&id, &name, &eventName); err != nil {
			return nil, err
		}

		if len(statuses) == 0 || statuses[len(statuses)-1].ID != id {
			statuses = append(statuses, StatusRow{ID: id, Name: name, Events: make([]string, 0)})
		}
		if eventName != nil {
			if _, parseErr := event.ParseEvent(*eventName); parseErr == nil {
				last := &statuses[len(statuses)-1]
				last.Events = append(last.Events, *eventName)
			}
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
