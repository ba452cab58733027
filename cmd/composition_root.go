package cmd

import (
	"log/slog"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires repositories, unit-of-work factories and handlers.
// Each Create* method hands out a handler bound to a fresh unit of work
// factory, so concurrent requests never share transaction state.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateApplyPaymentEventCommandHandler() commands.ApplyPaymentEventCommandHandler {
	return commands.NewApplyPaymentEventCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAssignResourceCommandHandler() commands.AssignResourceCommandHandler {
	return commands.NewAssignResourceCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateReplaceMappingsCommandHandler() commands.ReplaceMappingsCommandHandler {
	var f commands.MappingUoWFactory = FuncMappingUoWFactory(func() commands.MappingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReplaceMappingsCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateStatusCommandHandler() commands.CreateStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateConfigureScheduleCommandHandler() commands.ConfigureScheduleCommandHandler {
	var f commands.SettingUoWFactory = FuncSettingUoWFactory(func() commands.SettingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfigureScheduleCommandHandler(f)
}

func (c *CompositionRoot) CreateReclaimExpiredOrdersCommandHandler() commands.ReclaimExpiredOrdersCommandHandler {
	var f commands.ReclaimUoWFactory = FuncReclaimUoWFactory(func() commands.ReclaimUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReclaimExpiredOrdersCommandHandler(f, c.config.ReclamationSchedule, c.logger)
}

func (c *CompositionRoot) CreateGetOrderAuditLogQueryHandler() queries.GetOrderAuditLogQueryHandler {
	return queries.NewGetOrderAuditLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditLogQueryHandler() queries.GetAuditLogQueryHandler {
	return queries.NewGetAuditLogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusesQueryHandler() queries.GetStatusesQueryHandler {
	return queries.NewGetStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableResourcesQueryHandler() queries.GetAvailableResourcesQueryHandler {
	return queries.NewGetAvailableResourcesQueryHandler(c.gormDB)
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncMappingUoWFactory func() commands.MappingUoW

func (f FuncMappingUoWFactory) Create() commands.MappingUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncSettingUoWFactory func() commands.SettingUoW

func (f FuncSettingUoWFactory) Create() commands.SettingUoW {
	return f()
}

type FuncReclaimUoWFactory func() commands.ReclaimUoW

func (f FuncReclaimUoWFactory) Create() commands.ReclaimUoW {
	return f()
}
