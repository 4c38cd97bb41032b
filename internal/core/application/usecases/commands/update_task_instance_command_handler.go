package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
)

// UpdateTaskInstanceCommandHandler applies a task transition and its cascade.
// The task change, the activation of the next task and the completion of the
// workflow instance and order are committed together or not at all.
//
// Example:
//
//	cmd, _ := NewUpdateTaskInstanceCommand(taskInstanceID, order.RunCompleted, &notes)
//	ti, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrStateIsInvalid) {
//	    // order not approved yet, already completed, or illegal transition
//	}
type UpdateTaskInstanceCommandHandler struct {
	uowFactory UoWFactory
	now        func() time.Time
}

// NewUpdateTaskInstanceCommandHandler creates a handler for task instance updates.
func NewUpdateTaskInstanceCommandHandler(uowFactory UoWFactory) UpdateTaskInstanceCommandHandler {
	return UpdateTaskInstanceCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle updates the task instance and returns it.
func (h UpdateTaskInstanceCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateTaskInstanceCommand,
) (*order.TaskInstance, error) {
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

	o, err := orders.GetByTaskInstance(ctx, cmd.TaskInstanceID())
	if err != nil {
		return nil, err
	}

	wi, err := o.WorkflowInstanceOfTask(cmd.TaskInstanceID())
	if err != nil {
		return nil, err
	}

	workflow, err := uow.TemplateRepository().GetWorkflow(ctx, wi.WorkflowID())
	if err != nil {
		return nil, err
	}

	ti, err := o.UpdateTaskInstance(cmd.TaskInstanceID(), cmd.Status(), cmd.Comments(), workflow, h.now())
	if err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return ti, nil
}
