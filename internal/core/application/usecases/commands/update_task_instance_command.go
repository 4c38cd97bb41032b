package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrUpdateTaskInstanceCommandIsNotConstructed = errors.New(
	"UpdateTaskInstanceCommand must be created via NewUpdateTaskInstanceCommand constructor",
)

// UpdateTaskInstanceCommand moves a task instance to a new status and replaces
// its comments. A nil comments value clears them.
type UpdateTaskInstanceCommand struct { //nolint:recvcheck //using for validation
	taskInstanceID kernel.UUID
	status         order.RunStatus
	comments       *string

	guard guard.ConstructorGuard
}

// NewUpdateTaskInstanceCommand validates the instance id and the target status.
func NewUpdateTaskInstanceCommand(
	taskInstanceID kernel.UUID,
	status order.RunStatus,
	comments *string,
) (UpdateTaskInstanceCommand, error) {
	if err := errors.Join(taskInstanceID.Validate(), status.Validate()); err != nil {
		return UpdateTaskInstanceCommand{}, err
	}

	var c *string
	if comments != nil {
		v := *comments
		c = &v
	}

	return UpdateTaskInstanceCommand{
		taskInstanceID: taskInstanceID,
		status:         status,
		comments:       c,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTaskInstanceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTaskInstanceCommandIsNotConstructed)
}

// TaskInstanceID returns the task instance to update.
func (c UpdateTaskInstanceCommand) TaskInstanceID() kernel.UUID {
	return c.taskInstanceID
}

// Status returns the target status.
func (c UpdateTaskInstanceCommand) Status() order.RunStatus {
	return c.status
}

// Comments returns the new comments or nil.
func (c UpdateTaskInstanceCommand) Comments() *string {
	return c.comments
}
