// Package http implements the generated ServerInterface: it translates HTTP
// requests into commands and queries, and domain errors into the uniform
// response envelope.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/event"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	applyPaymentHandler      commands.ApplyPaymentEventCommandHandler
	changeStatusHandler      commands.ChangeOrderStatusCommandHandler
	assignResourceHandler    commands.AssignResourceCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	replaceMappingsHandler   commands.ReplaceMappingsCommandHandler
	createStatusHandler      commands.CreateStatusCommandHandler
	configureScheduleHandler commands.ConfigureScheduleCommandHandler
	reclaimHandler           commands.ReclaimExpiredOrdersCommandHandler

	// Query handlers
	orderAuditHandler         queries.GetOrderAuditLogQueryHandler
	auditLogHandler           queries.GetAuditLogQueryHandler
	statusesHandler           queries.GetStatusesQueryHandler
	availableResourcesHandler queries.GetAvailableResourcesQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	applyPaymentHandler commands.ApplyPaymentEventCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignResourceHandler commands.AssignResourceCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	replaceMappingsHandler commands.ReplaceMappingsCommandHandler,
	createStatusHandler commands.CreateStatusCommandHandler,
	configureScheduleHandler commands.ConfigureScheduleCommandHandler,
	reclaimHandler commands.ReclaimExpiredOrdersCommandHandler,
	orderAuditHandler queries.GetOrderAuditLogQueryHandler,
	auditLogHandler queries.GetAuditLogQueryHandler,
	statusesHandler queries.GetStatusesQueryHandler,
	availableResourcesHandler queries.GetAvailableResourcesQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		applyPaymentHandler:       applyPaymentHandler,
		changeStatusHandler:       changeStatusHandler,
		assignResourceHandler:     assignResourceHandler,
		deleteOrderHandler:        deleteOrderHandler,
		replaceMappingsHandler:    replaceMappingsHandler,
		createStatusHandler:       createStatusHandler,
		configureScheduleHandler:  configureScheduleHandler,
		reclaimHandler:            reclaimHandler,
		orderAuditHandler:         orderAuditHandler,
		auditLogHandler:           auditLogHandler,
		statusesHandler:           statusesHandler,
		availableResourcesHandler: availableResourcesHandler,
		logger:                    logger.With("component", "http_server"),
	}
}

// success writes the uniform envelope with an optional data payload.
func success(ctx echo.Context, code int, message string, data map[string]interface{}) error {
	result := servers.Result{
		Status:  "success",
		Code:    code,
		Message: message,
	}
	if data != nil {
		result.Data = &data
	}
	return ctx.JSON(code, result)
}

// fail translates a domain error into the envelope: validation errors map
// to 400, missing objects to 404, business-rule conflicts to 409.
// Everything else is internal: logged with full context, surfaced
// generically.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		code = http.StatusConflict
		message = err.Error()
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}

	return ctx.JSON(code, servers.Result{
		Status:  "error",
		Code:    code,
		Message: message,
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	orderID := kernel.NewUUID()

	var nationalID string
	if body.NationalId != nil {
		nationalID = *body.NationalId
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		body.CustomerName,
		body.CustomerPhone,
		nationalID,
		uint(body.CityId),
		uintPtr(body.ResourceId),
		uintPtr(body.BundleId),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusCreated, "order created", map[string]interface{}{
		"orderId": orderID.String(),
	})
}

// ApplyPaymentEvent handles POST /api/v1/orders/{orderId}/payment.
func (s *Server) ApplyPaymentEvent(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ApplyPaymentEventJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	outcome, err := commands.ParsePaymentOutcome(string(body.Outcome))
	if err != nil {
		return s.fail(ctx, err)
	}

	var reference string
	if body.Reference != nil {
		reference = *body.Reference
	}

	cmd, err := commands.NewApplyPaymentEventCommand(id, outcome, reference)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.applyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "payment outcome applied", nil)
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, uint(body.StatusId), body.Actor)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "status changed", nil)
}

// AssignResource handles POST /api/v1/orders/{orderId}/resource.
func (s *Server) AssignResource(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AssignResourceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewAssignResourceCommand(id, uint(body.ResourceId), uintPtr(body.BundleId), "operator")
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.assignResourceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "resource assigned", nil)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewDeleteOrderCommand(id, "operator")
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "order deleted", nil)
}

// ReplaceMappings handles PUT /api/v1/mappings/{event}.
func (s *Server) ReplaceMappings(ctx echo.Context, eventName string) error {
	var body servers.ReplaceMappingsJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	ev, err := event.ParseEvent(eventName)
	if err != nil {
		return s.fail(ctx, err)
	}

	statusIDs := make([]uint, 0, len(body.StatusIds))
	for _, id := range body.StatusIds {
		statusIDs = append(statusIDs, uint(id))
	}

	cmd, err := commands.NewReplaceMappingsCommand(ev, statusIDs)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.replaceMappingsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "mappings replaced", map[string]interface{}{
		"added":   result.Added,
		"removed": result.Removed,
	})
}

// GetStatuses handles GET /api/v1/statuses.
func (s *Server) GetStatuses(ctx echo.Context) error {
	statuses, err := s.statusesHandler.Handle(ctx.Request().Context(), queries.NewGetStatusesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Status, len(statuses))
	for i, st := range statuses {
		response[i] = servers.Status{
			Id:     int(st.ID),
			Name:   st.Name,
			Events: st.Events,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStatus handles POST /api/v1/statuses.
func (s *Server) CreateStatus(ctx echo.Context) error {
	var body servers.CreateStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewCreateStatusCommand(body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.createStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusCreated, "status created", map[string]interface{}{
		"statusId": id,
	})
}

// GetOrderAuditLog handles GET /api/v1/orders/{orderId}/audit.
func (s *Server) GetOrderAuditLog(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	query, err := queries.NewGetOrderAuditLogQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.orderAuditHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, auditRowsToResponse(rows))
}

// GetAuditLog handles GET /api/v1/audit.
func (s *Server) GetAuditLog(ctx echo.Context, params servers.GetAuditLogParams) error {
	actor := audit.ActorUnknown
	if params.Actor != nil {
		parsed, err := audit.ParseActor(*params.Actor)
		if err != nil {
			return s.fail(ctx, err)
		}
		actor = parsed
	}

	action := audit.ActionUnknown
	if params.Action != nil {
		parsed, err := audit.ParseAction(*params.Action)
		if err != nil {
			return s.fail(ctx, err)
		}
		action = parsed
	}

	query, err := queries.NewGetAuditLogQuery(
		actor,
		action,
		timeOrZero(params.From),
		timeOrZero(params.To),
		intOrZero(params.Limit),
		intOrZero(params.Offset),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.auditLogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, auditRowsToResponse(rows))
}

// GetAvailableResources handles GET /api/v1/resources/available.
func (s *Server) GetAvailableResources(ctx echo.Context) error {
	resources, err := s.availableResourcesHandler.Handle(ctx.Request().Context(), queries.NewGetAvailableResourcesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Resource, len(resources))
	for i, res := range resources {
		response[i] = servers.Resource{
			Id:       int(res.ID),
			Number:   res.Number,
			Price:    res.Price,
			SetupFee: res.SetupFee,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RunReclamation handles POST /api/v1/reclamation/run.
func (s *Server) RunReclamation(ctx echo.Context) error {
	reclaimed, err := s.reclaimHandler.Handle(ctx.Request().Context(), commands.NewReclaimExpiredOrdersCommand())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.ReclaimedOrder, 0, len(reclaimed))
	for _, row := range reclaimed {
		id, parseErr := kernel.UUIDFromString(row.OrderID)
		if parseErr != nil {
			return s.fail(ctx, parseErr)
		}
		response = append(response, servers.ReclaimedOrder{
			OrderId:        id.Bytes(),
			DisplayNumber:  int64(row.DisplayNumber),
			ResourceNumber: row.ResourceNumber,
			OverdueMinutes: row.OverdueMinutes,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfigureReclamationSchedule handles PUT /api/v1/reclamation/schedule.
func (s *Server) ConfigureReclamationSchedule(ctx echo.Context) error {
	var body servers.ConfigureReclamationScheduleJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewConfigureScheduleCommand(body.Schedule)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.configureScheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return success(ctx, http.StatusOK, "schedule stored", nil)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func auditRowsToResponse(rows []queries.AuditLogRow) []servers.AuditLogEntry {
	response := make([]servers.AuditLogEntry, len(rows))
	for i, row := range rows {
		actorIdentity := row.ActorIdentity
		previousValue := row.PreviousValue
		newValue := row.NewValue
		detail := row.Detail

		response[i] = servers.AuditLogEntry{
			Id:            int(row.ID),
			OrderId:       row.OrderID,
			Action:        row.Action,
			Actor:         row.Actor,
			ActorIdentity: &actorIdentity,
			PreviousValue: &previousValue,
			NewValue:      &newValue,
			Detail:        &detail,
			OccurredAt:    row.OccurredAt,
		}
	}
	return response
}

func uintPtr(v *int) *uint {
	if v == nil {
		return nil
	}
	u := uint(*v)
	return &u
}

func timeOrZero(v *time.Time) time.Time {
	if v == nil {
		return time.Time{}
	}
	return *v
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
