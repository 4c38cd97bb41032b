package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/core/domain/services"
)

// CreateOrderCommandHandler instantiates the requested workflow templates into
// a new order. The order, its workflow instances and its task instances are
// written in one transaction, so a missing template leaves nothing behind.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(carID, customerID, []kernel.UUID{inspectionID})
//
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown workflow or task template
//	}
type CreateOrderCommandHandler struct {
	uowFactory   UoWFactory
	instantiator services.WorkflowInstantiator
	now          func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:   uowFactory,
		instantiator: services.NewWorkflowInstantiator(),
		now:          utcNow,
	}
}

// Handle loads the templates, builds the order graph and persists it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	templates := uow.TemplateRepository()

	workflows, err := templates.GetWorkflows(ctx, cmd.WorkflowIDs())
	if err != nil {
		return nil, err
	}

	tasks, err := templates.GetTasks(ctx, template.TaskIDs(workflows))
	if err != nil {
		return nil, err
	}

	o, err := h.instantiator.Instantiate(cmd.CarID(), cmd.CustomerID(), cmd.WorkflowIDs(), workflows, tasks, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func utcNow() time.Time {
	return time.Now().UTC()
}
