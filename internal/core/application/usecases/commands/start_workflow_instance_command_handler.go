package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
)

// StartWorkflowInstanceCommandHandler writes the requested status to a workflow
// instance. The owning order stays locked from the lookup until commit.
type StartWorkflowInstanceCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewStartWorkflowInstanceCommandHandler creates a handler for starting workflow instances.
func NewStartWorkflowInstanceCommandHandler(uowFactory UoWFactory) StartWorkflowInstanceCommandHandler {
	return StartWorkflowInstanceCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle starts the workflow instance and returns it with its new status.
func (h StartWorkflowInstanceCommandHandler) Handle(
	ctx context.Context,
	cmd StartWorkflowInstanceCommand,
) (*order.WorkflowInstance, error) {
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

	orders := uow.OrderRepository()

	o, err := orders.GetByWorkflowInstance(ctx, cmd.WorkflowInstanceID())
	if err != nil {
		return nil, err
	}

	wi, err := o.WorkflowInstance(cmd.WorkflowInstanceID())
	if err != nil {
		return nil, err
	}

	workflow, err := uow.TemplateRepository().GetWorkflow(ctx, wi.WorkflowID())
	if err != nil {
		return nil, err
	}

	if wi, err = o.StartWorkflowInstance(cmd.WorkflowInstanceID(), cmd.Status(), workflow, h.now()); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wi, nil
}
