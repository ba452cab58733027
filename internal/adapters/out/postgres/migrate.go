package postgres

import (
	"context"

	"ordering/internal/adapters/out/postgres/auditrepo"
	"ordering/internal/adapters/out/postgres/bundlerepo"
	"ordering/internal/adapters/out/postgres/mappingrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/resourcerepo"
	"ordering/internal/adapters/out/postgres/settingrepo"
	"ordering/internal/adapters/out/postgres/statusrepo"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/mapping"

	"gorm.io/gorm"
)

// defaultCreationStatusName is seeded so order creation never fails purely
// for missing workflow configuration. Must stay in sync with the fallback
// the create-order handler uses.
const defaultCreationStatusName = "New"

// Migrate creates or updates the schema for all aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&statusrepo.StatusDTO{},
		&mappingrepo.MappingDTO{},
		&resourcerepo.ResourceDTO{},
		&bundlerepo.BundleDTO{},
		&orderrepo.OrderDTO{},
		&auditrepo.EntryDTO{},
		&settingrepo.SettingDTO{},
	)
}

// Seed guarantees the default creation status exists and carries the
// order-creation tag. Idempotent.
func Seed(ctx context.Context, db *gorm.DB) error {
	statuses := statusrepo.NewGormStatusRepository(db)
	mappings := mappingrepo.NewGormMappingRepository(db)

	st, err := statuses.GetOrCreateByName(ctx, defaultCreationStatusName)
	if err != nil {
		return err
	}

	tagged, err := mappings.IsStatusMappedToEvent(ctx, st.ID(), event.OrderCreated)
	if err != nil {
		return err
	}
	if tagged {
		return nil
	}

	m, err := mapping.NewMapping(event.OrderCreated, st.ID())
	if err != nil {
		return err
	}
	return mappings.Add(ctx, m)
}
