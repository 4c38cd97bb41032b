package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrStartWorkflowInstanceCommandIsNotConstructed = errors.New(
	"StartWorkflowInstanceCommand must be created via NewStartWorkflowInstanceCommand constructor",
)

// StartWorkflowInstanceCommand requests a status for a workflow instance of an
// order that still awaits the customer. Only PENDING and IN_PROGRESS are accepted.
type StartWorkflowInstanceCommand struct { //nolint:recvcheck //using for validation
	workflowInstanceID kernel.UUID
	status             order.RunStatus

	guard guard.ConstructorGuard
}

// NewStartWorkflowInstanceCommand validates the instance id and the requested status.
func NewStartWorkflowInstanceCommand(
	workflowInstanceID kernel.UUID,
	status order.RunStatus,
) (StartWorkflowInstanceCommand, error) {
	if err := errors.Join(workflowInstanceID.Validate(), status.ValidateStartTarget()); err != nil {
		return StartWorkflowInstanceCommand{}, err
	}

	return StartWorkflowInstanceCommand{
		workflowInstanceID: workflowInstanceID,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkflowInstanceCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkflowInstanceCommandIsNotConstructed)
}

// WorkflowInstanceID returns the instance to start.
func (c StartWorkflowInstanceCommand) WorkflowInstanceID() kernel.UUID {
	return c.workflowInstanceID
}

// Status returns the requested status.
func (c StartWorkflowInstanceCommand) Status() order.RunStatus {
	return c.status
}
