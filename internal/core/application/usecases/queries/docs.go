// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database, bypassing the aggregate
// layer, and never mutate state.
package queries
