package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repository
// instances returned while a transaction is active are bound to it, so a
// status change and its resource release commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StatusRepository() StatusRepository
	MappingRepository() MappingRepository
	ResourceRepository() ResourceRepository
	BundleRepository() BundleRepository
	AuditRepository() AuditRepository
	SettingRepository() SettingRepository
}
