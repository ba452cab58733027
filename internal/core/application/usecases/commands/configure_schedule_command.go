package commands

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
	"ordering/internal/pkg/schedule"

	"github.com/robfig/cron/v3"
)

var ErrConfigureScheduleCommandIsNotConstructed = errors.New(
	"ConfigureScheduleCommand must be created via NewConfigureScheduleCommand constructor",
)

// ConfigureScheduleCommand stores a new reclamation schedule. Accepts a
// five-field cron string or a time-of-day value ("HH:MM"); the sweep picks
// the new value up on its next run.
type ConfigureScheduleCommand struct { //nolint:recvcheck //using for validation
	spec string

	guard guard.ConstructorGuard
}

// NewConfigureScheduleCommand validates and normalizes the schedule at the
// boundary. Malformed strings are reported as validation errors rather
// than silently downgrading here: the fallback grace period is the sweep's
// concern, not the operator API's.
func NewConfigureScheduleCommand(spec string) (ConfigureScheduleCommand, error) {
	cmd := ConfigureScheduleCommand{
		guard: guard.NewConstructorGuard(),
	}

	normalized := schedule.Normalize(spec)
	if _, err := cron.ParseStandard(normalized); err != nil {
		return ConfigureScheduleCommand{}, errs.NewValueIsInvalidErrorWithCause("schedule", err)
	}

	cmd.spec = normalized
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfigureScheduleCommand) Validate() error {
	return c.guard.Validate(ErrConfigureScheduleCommandIsNotConstructed)
}

// Spec returns the normalized five-field schedule.
func (c ConfigureScheduleCommand) Spec() string { return c.spec }

// SettingUoW manages transactions for operational settings.
type SettingUoW interface {
	TxManager
	SettingRepoFactory
}

// SettingUoWFactory creates setting unit of work instances.
type SettingUoWFactory interface {
	Create() SettingUoW
}

// ConfigureScheduleCommandHandler persists the reclamation schedule.
type ConfigureScheduleCommandHandler struct {
	uowFactory SettingUoWFactory
}

// NewConfigureScheduleCommandHandler creates a handler for schedule
// updates.
func NewConfigureScheduleCommandHandler(uowFactory SettingUoWFactory) ConfigureScheduleCommandHandler {
	return ConfigureScheduleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the schedule under ScheduleSettingKey.
func (h ConfigureScheduleCommandHandler) Handle(ctx context.Context, cmd ConfigureScheduleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingRepository().Set(ctx, ScheduleSettingKey, cmd.Spec()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
