// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Each handler owns exactly one
// transaction per logical operation: status changes, resource releases and
// their audit entries commit together or not at all.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusRepoFactory provides access to the status repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// MappingRepoFactory provides access to the mapping repository within a transaction.
	MappingRepoFactory interface {
		MappingRepository() ports.MappingRepository
	}

	// ResourceRepoFactory provides access to the resource repository within a transaction.
	ResourceRepoFactory interface {
		ResourceRepository() ports.ResourceRepository
	}

	// BundleRepoFactory provides access to the bundle repository within a transaction.
	BundleRepoFactory interface {
		BundleRepository() ports.BundleRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// SettingRepoFactory provides access to the setting repository within a transaction.
	SettingRepoFactory interface {
		SettingRepository() ports.SettingRepository
	}

	// LifecycleUoW manages transactions for order lifecycle operations:
	// creation, payment transitions, manual transitions, resource
	// assignment and deletion.
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		MappingRepoFactory
		ResourceRepoFactory
		BundleRepoFactory
		AuditRepoFactory
	}

	// LifecycleUoWFactory creates lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// MappingUoW manages transactions for mapping configuration.
	MappingUoW interface {
		TxManager
		StatusRepoFactory
		MappingRepoFactory
	}

	// MappingUoWFactory creates mapping unit of work instances.
	MappingUoWFactory interface {
		Create() MappingUoW
	}

	// ReclaimUoW manages transactions for the reclamation sweep.
	ReclaimUoW interface {
		TxManager
		OrderRepoFactory
		StatusRepoFactory
		MappingRepoFactory
		ResourceRepoFactory
		AuditRepoFactory
		SettingRepoFactory
	}

	// ReclaimUoWFactory creates reclamation unit of work instances.
	ReclaimUoWFactory interface {
		Create() ReclaimUoW
	}
)
