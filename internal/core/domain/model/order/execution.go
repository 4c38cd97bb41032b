package order

import (
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"
)

// StartWorkflowInstance writes the requested status to a workflow instance of
// the order. Starting with IN_PROGRESS also activates the first task instance
// in template order.
//
// workflow must be the template the instance was created from.
func (o *Order) StartWorkflowInstance(
	workflowInstanceID kernel.UUID,
	status RunStatus,
	workflow *template.Workflow,
	at time.Time,
) (*WorkflowInstance, error) {
	if err := status.ValidateStartTarget(); err != nil {
		return nil, err
	}

	wi, err := o.WorkflowInstance(workflowInstanceID)
	if err != nil {
		return nil, err
	}

	if err := o.status.ValidateStart(); err != nil {
		return nil, err
	}

	ordered, err := wi.OrderedTaskInstances(workflow)
	if err != nil {
		return nil, err
	}

	if status == RunInProgress {
		if len(ordered) == 0 {
			return nil, errs.NewInvariantIsBrokenErrorWithCause(
				"task instances",
				fmt.Errorf("workflow instance %s has no task instances to start", wi.id),
			)
		}
		ordered[0].moveTo(RunInProgress, at)
	}

	wi.status = status
	o.updatedAt = at

	return wi, nil
}

// UpdateTaskInstance moves a task instance to status and replaces its comments.
// Completing a task instance cascades: the next pending task of the workflow
// instance is activated, or the workflow instance completes once all of its
// tasks are done, and the order completes once all of its workflow instances are.
//
// Nothing is changed when an error is returned.
func (o *Order) UpdateTaskInstance(
	taskInstanceID kernel.UUID,
	status RunStatus,
	comments *string,
	workflow *template.Workflow,
	at time.Time,
) (*TaskInstance, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	wi, err := o.WorkflowInstanceOfTask(taskInstanceID)
	if err != nil {
		return nil, err
	}
	ti := wi.taskInstance(taskInstanceID)

	if err := o.status.ValidateTaskUpdate(taskInstanceID); err != nil {
		return nil, err
	}

	if err := ti.status.ValidateTransition(status); err != nil {
		return nil, err
	}

	if ti.status == RunPending && status == RunInProgress {
		if active := wi.activeTaskInstance(); active != nil {
			return nil, errs.NewStateIsInvalidErrorWithCause(
				"task instance status",
				fmt.Errorf("task instance %s is already %s in workflow instance %s", active.id, RunInProgress, wi.id),
			)
		}
	}

	// Resolved before any mutation so a broken graph leaves the order untouched.
	ordered, err := wi.OrderedTaskInstances(workflow)
	if err != nil {
		return nil, err
	}

	var next *TaskInstance
	if status == RunCompleted {
		next = nextPending(ordered, ti)
		if next == nil && !completesWith(ordered, ti) {
			return nil, errs.NewInvariantIsBrokenErrorWithCause(
				"task instances",
				fmt.Errorf("workflow instance %s has unfinished task instances but none is %s", wi.id, RunPending),
			)
		}
	}

	ti.moveTo(status, at)
	ti.comments = copyString(comments)

	if status == RunInProgress && wi.status == RunPending {
		wi.status = RunInProgress
	}

	if status == RunCompleted {
		if next != nil {
			next.moveTo(RunInProgress, at)
		} else {
			wi.status = RunCompleted
			if o.allWorkflowsCompleted() {
				completed, err := o.status.Complete()
				if err != nil {
					return nil, err
				}
				o.status = completed
			}
		}
	}

	o.updatedAt = at

	return ti, nil
}

// nextPending returns the first PENDING task instance in template order other than current.
func nextPending(ordered []*TaskInstance, current *TaskInstance) *TaskInstance {
	for _, ti := range ordered {
		if ti != current && ti.status == RunPending {
			return ti
		}
	}
	return nil
}

// completesWith reports whether completing current leaves every task instance completed.
func completesWith(ordered []*TaskInstance, current *TaskInstance) bool {
	for _, ti := range ordered {
		if ti != current && ti.status != RunCompleted {
			return false
		}
	}
	return true
}
