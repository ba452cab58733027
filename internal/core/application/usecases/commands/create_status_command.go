package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/status"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateStatusCommandIsNotConstructed = errors.New(
	"CreateStatusCommand must be created via NewCreateStatusCommand constructor",
)

// CreateStatusCommand represents a request to add a workflow status to the
// catalog.
type CreateStatusCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateStatusCommand creates a status creation command.
func NewCreateStatusCommand(name string) (CreateStatusCommand, error) {
	cmd := CreateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(name) == "" {
		return CreateStatusCommand{}, errs.NewValueIsRequiredError("status name")
	}

	cmd.name = strings.TrimSpace(name)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStatusCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusCommandIsNotConstructed)
}

// Name returns the requested display name.
func (c CreateStatusCommand) Name() string { return c.name }

// StatusUoW manages transactions for status catalog operations.
type StatusUoW interface {
	TxManager
	StatusRepoFactory
}

// StatusUoWFactory creates status unit of work instances.
type StatusUoWFactory interface {
	Create() StatusUoW
}

// CreateStatusCommandHandler adds a status to the catalog. Display names
// are unique among non-deleted statuses.
type CreateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
}

// NewCreateStatusCommandHandler creates a handler for status creation.
func NewCreateStatusCommandHandler(uowFactory StatusUoWFactory) CreateStatusCommandHandler {
	return CreateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the status and returns its assigned id.
func (h CreateStatusCommandHandler) Handle(ctx context.Context, cmd CreateStatusCommand) (uint, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	statusRepo := uow.StatusRepository()

	existing, err := statusRepo.GetByName(ctx, cmd.Name())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}
	if existing != nil {
		return 0, errs.NewBusinessRuleError(
			"unique status name",
			fmt.Sprintf("status %q already exists", cmd.Name()),
		)
	}

	st, err := status.NewStatus(cmd.Name())
	if err != nil {
		return 0, err
	}

	if err = statusRepo.Add(ctx, st); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return st.ID(), nil
}
