package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/pkg/guard"
)

var ErrGetAuditLogQueryIsNotConstructed = errors.New(
	"GetAuditLogQuery must be created via NewGetAuditLogQuery constructor",
)

const defaultAuditPageSize = 50

// GetAuditLogQuery requests the filtered global audit view. Zero-valued
// filters are not applied.
type GetAuditLogQuery struct {
	actor  audit.Actor
	action audit.Action
	from   time.Time
	to     time.Time
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewGetAuditLogQuery creates the global audit query. Actor and action
// filters accept their zero values to mean "any"; a non-positive limit
// falls back to the default page size.
func NewGetAuditLogQuery(actor audit.Actor, action audit.Action, from, to time.Time, limit, offset int) (GetAuditLogQuery, error) {
	if actor != audit.ActorUnknown {
		if err := actor.Validate(); err != nil {
			return GetAuditLogQuery{}, err
		}
	}
	if action != audit.ActionUnknown {
		if err := action.Validate(); err != nil {
			return GetAuditLogQuery{}, err
		}
	}

	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	return GetAuditLogQuery{
		actor:  actor,
		action: action,
		from:   from,
		to:     to,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditLogQueryIsNotConstructed)
}

// Actor returns the actor-kind filter, ActorUnknown for "any".
func (q GetAuditLogQuery) Actor() audit.Actor { return q.actor }

// Action returns the action-kind filter, ActionUnknown for "any".
func (q GetAuditLogQuery) Action() audit.Action { return q.action }

// From returns the inclusive lower bound of the date range.
func (q GetAuditLogQuery) From() time.Time { return q.from }

// To returns the exclusive upper bound of the date range.
func (q GetAuditLogQuery) To() time.Time { return q.to }

// Limit returns the page size.
func (q GetAuditLogQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetAuditLogQuery) Offset() int { return q.offset }
