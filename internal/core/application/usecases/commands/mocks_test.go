package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/bundle"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/mapping"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/resource"
	"ordering/internal/core/domain/model/status"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByResource(ctx context.Context, resourceID uint) (*order.Order, error) {
	args := m.Called(ctx, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListReclaimable(ctx context.Context, statusIDs []uint, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, statusIDs, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStatusRepository struct{ mock.Mock }

func (m *MockStatusRepository) Add(ctx context.Context, s *status.Status) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatusRepository) Update(ctx context.Context, s *status.Status) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatusRepository) Get(ctx context.Context, id uint) (*status.Status, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

func (m *MockStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*status.Status), args.Error(1)
}

func (m *MockStatusRepository) GetOrCreateByName(ctx context.Context, name string) (*status.Status, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*status.Status), args.Error(1)
}

type MockMappingRepository struct{ mock.Mock }

func (m *MockMappingRepository) Add(ctx context.Context, mp *mapping.Mapping) error {
	args := m.Called(ctx, mp)
	return args.Error(0)
}

func (m *MockMappingRepository) ResolveStatusesForEvent(ctx context.Context, ev event.Event) ([]uint, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockMappingRepository) FirstStatusForEvent(ctx context.Context, ev event.Event) (uint, bool, error) {
	args := m.Called(ctx, ev)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockMappingRepository) IsStatusMappedToEvent(ctx context.Context, statusID uint, ev event.Event) (bool, error) {
	args := m.Called(ctx, statusID, ev)
	return args.Bool(0), args.Error(1)
}

func (m *MockMappingRepository) SoftDeleteForEvent(ctx context.Context, ev event.Event, statusIDs []uint) error {
	args := m.Called(ctx, ev, statusIDs)
	return args.Error(0)
}

type MockResourceRepository struct{ mock.Mock }

func (m *MockResourceRepository) Add(ctx context.Context, r *resource.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResourceRepository) Get(ctx context.Context, id uint) (*resource.Resource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockResourceRepository) GetByNumber(ctx context.Context, number string) (*resource.Resource, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*resource.Resource), args.Error(1)
}

func (m *MockResourceRepository) ListAvailable(ctx context.Context) ([]*resource.Resource, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*resource.Resource), args.Error(1)
}

func (m *MockResourceRepository) Update(ctx context.Context, r *resource.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResourceRepository) UpdateIfAvailable(ctx context.Context, r *resource.Resource) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

type MockBundleRepository struct{ mock.Mock }

func (m *MockBundleRepository) Add(ctx context.Context, b *bundle.Bundle) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBundleRepository) Get(ctx context.Context, id uint) (*bundle.Bundle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bundle.Bundle), args.Error(1)
}

func (m *MockBundleRepository) List(ctx context.Context) ([]*bundle.Bundle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*bundle.Bundle), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

func (m *MockAuditRepository) List(ctx context.Context, filter ports.AuditFilter) ([]*audit.Entry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*audit.Entry), args.Error(1)
}

type MockSettingRepository struct{ mock.Mock }

func (m *MockSettingRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockLifecycleUoW struct{ mock.Mock }

func (m *MockLifecycleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLifecycleUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLifecycleUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockLifecycleUoW) MappingRepository() ports.MappingRepository {
	args := m.Called()
	return args.Get(0).(ports.MappingRepository)
}

func (m *MockLifecycleUoW) ResourceRepository() ports.ResourceRepository {
	args := m.Called()
	return args.Get(0).(ports.ResourceRepository)
}

func (m *MockLifecycleUoW) BundleRepository() ports.BundleRepository {
	args := m.Called()
	return args.Get(0).(ports.BundleRepository)
}

func (m *MockLifecycleUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockMappingUoW struct{ mock.Mock }

func (m *MockMappingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMappingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMappingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMappingUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockMappingUoW) MappingRepository() ports.MappingRepository {
	args := m.Called()
	return args.Get(0).(ports.MappingRepository)
}

type MockMappingUoWFactory struct{ mock.Mock }

func (m *MockMappingUoWFactory) Create() commands.MappingUoW {
	args := m.Called()
	return args.Get(0).(commands.MappingUoW)
}

type MockReclaimUoW struct{ mock.Mock }

func (m *MockReclaimUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReclaimUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReclaimUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReclaimUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockReclaimUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

func (m *MockReclaimUoW) MappingRepository() ports.MappingRepository {
	args := m.Called()
	return args.Get(0).(ports.MappingRepository)
}

func (m *MockReclaimUoW) ResourceRepository() ports.ResourceRepository {
	args := m.Called()
	return args.Get(0).(ports.ResourceRepository)
}

func (m *MockReclaimUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

func (m *MockReclaimUoW) SettingRepository() ports.SettingRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingRepository)
}

type MockReclaimUoWFactory struct{ mock.Mock }

func (m *MockReclaimUoWFactory) Create() commands.ReclaimUoW {
	args := m.Called()
	return args.Get(0).(commands.ReclaimUoW)
}

type MockStatusUoW struct{ mock.Mock }

func (m *MockStatusUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUoW) StatusRepository() ports.StatusRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusRepository)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockSettingUoW struct{ mock.Mock }

func (m *MockSettingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingUoW) SettingRepository() ports.SettingRepository {
	args := m.Called()
	return args.Get(0).(ports.SettingRepository)
}

type MockSettingUoWFactory struct{ mock.Mock }

func (m *MockSettingUoWFactory) Create() commands.SettingUoW {
	args := m.Called()
	return args.Get(0).(commands.SettingUoW)
}
