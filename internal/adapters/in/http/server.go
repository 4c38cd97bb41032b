package http

import (
	"context"
	"net/http"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case handlers the server delegates to.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	ApproveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) (*order.Order, error)
	}

	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}

	StartWorkflowInstanceHandler interface {
		Handle(ctx context.Context, cmd commands.StartWorkflowInstanceCommand) (*order.WorkflowInstance, error)
	}

	UpdateTaskInstanceHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateTaskInstanceCommand) (*order.TaskInstance, error)
	}

	GetOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error)
	}

	GetOrderDetailHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailQuery) (queries.GetOrderDetailQueryResponse, error)
	}

	GetOrderedTaskInstancesHandler interface {
		Handle(ctx context.Context, query queries.GetOrderedTaskInstancesQuery) ([]queries.TaskInstanceResponse, error)
	}
)

// Handlers groups the command and query handlers of the API.
type Handlers struct {
	CreateOrder             CreateOrderHandler
	ApproveOrder            ApproveOrderHandler
	DeleteOrder             DeleteOrderHandler
	StartWorkflowInstance   StartWorkflowInstanceHandler
	UpdateTaskInstance      UpdateTaskInstanceHandler
	GetOrders               GetOrdersHandler
	GetOrderDetail          GetOrderDetailHandler
	GetOrderedTaskInstances GetOrderedTaskInstancesHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Errors are returned to echo and rendered by ErrorHandler.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromReadModel(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	workflowIDs := make([]kernel.UUID, 0, len(body.WorkflowIds))
	for _, id := range body.WorkflowIds {
		workflowIDs = append(workflowIDs, toKernel(id))
	}

	cmd, err := commands.NewCreateOrderCommand(toKernel(body.CarId), toKernel(body.CustomerId), workflowIDs)
	if err != nil {
		return err
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, orderGraphFromDomain(o))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderDetailQuery(toKernel(orderID))
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderDetailFromReadModel(detail))
}

// ApproveOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) ApproveOrder(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.ApproveOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewApproveOrderCommand(toKernel(orderID), status)
	if err != nil {
		return err
	}

	o, err := s.handlers.ApproveOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, orderFromDomain(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(toKernel(orderID))
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWorkflowInstance handles PATCH /api/v1/workflow-instances/{workflowInstanceId}.
func (s *Server) StartWorkflowInstance(ctx echo.Context, workflowInstanceID servers.WorkflowInstanceId) error {
	var body servers.StartWorkflowInstanceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	status, err := order.ParseRunStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartWorkflowInstanceCommand(toKernel(workflowInstanceID), status)
	if err != nil {
		return err
	}

	wi, err := s.handlers.StartWorkflowInstance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, workflowInstanceStateFromDomain(wi))
}

// ListTaskInstances handles GET /api/v1/workflow-instances/{workflowInstanceId}/task-instances.
func (s *Server) ListTaskInstances(ctx echo.Context, workflowInstanceID servers.WorkflowInstanceId) error {
	query, err := queries.NewGetOrderedTaskInstancesQuery(toKernel(workflowInstanceID))
	if err != nil {
		return err
	}

	tasks, err := s.handlers.GetOrderedTaskInstances.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, taskInstancesFromReadModel(tasks))
}

// UpdateTaskInstance handles PATCH /api/v1/task-instances/{taskInstanceId}.
func (s *Server) UpdateTaskInstance(ctx echo.Context, taskInstanceID servers.TaskInstanceId) error {
	var body servers.UpdateTaskInstanceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	status, err := order.ParseRunStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateTaskInstanceCommand(toKernel(taskInstanceID), status, body.Comments)
	if err != nil {
		return err
	}

	ti, err := s.handlers.UpdateTaskInstance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, taskInstanceStateFromDomain(ti))
}
