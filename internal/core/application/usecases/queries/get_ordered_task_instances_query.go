package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetOrderedTaskInstancesQueryIsNotConstructed = errors.New(
	"GetOrderedTaskInstancesQuery must be created via NewGetOrderedTaskInstancesQuery constructor",
)

// GetOrderedTaskInstancesQuery asks for the task instances of one workflow
// instance in template order.
type GetOrderedTaskInstancesQuery struct {
	workflowInstanceID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderedTaskInstancesQuery creates the query for the given workflow instance.
func NewGetOrderedTaskInstancesQuery(workflowInstanceID kernel.UUID) (GetOrderedTaskInstancesQuery, error) {
	if err := workflowInstanceID.Validate(); err != nil {
		return GetOrderedTaskInstancesQuery{}, err
	}

	return GetOrderedTaskInstancesQuery{
		workflowInstanceID: workflowInstanceID,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderedTaskInstancesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderedTaskInstancesQueryIsNotConstructed)
}

// WorkflowInstanceID returns the workflow instance to list.
func (q GetOrderedTaskInstancesQuery) WorkflowInstanceID() kernel.UUID {
	return q.workflowInstanceID
}
