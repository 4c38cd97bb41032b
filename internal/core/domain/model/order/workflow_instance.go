package order

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrWorkflowInstanceIsNotConstructed is returned when a WorkflowInstance was not
// built by NewWorkflowInstance or RestoreWorkflowInstance.
var ErrWorkflowInstanceIsNotConstructed = errors.New(
	"WorkflowInstance must be created via NewWorkflowInstance constructor",
)

// WorkflowInstance is the stateful run of one workflow template against an order.
// It is created together with all of its task instances and never gains or
// loses one afterwards.
type WorkflowInstance struct {
	id            kernel.UUID
	orderID       kernel.UUID
	workflowID    kernel.UUID
	status        RunStatus
	taskInstances []*TaskInstance

	guard guard.ConstructorGuard
}

// NewWorkflowInstance creates a PENDING workflow instance owning the given task instances.
func NewWorkflowInstance(id, orderID, workflowID kernel.UUID, taskInstances []*TaskInstance) (*WorkflowInstance, error) {
	return RestoreWorkflowInstance(id, orderID, workflowID, RunPending, taskInstances)
}

// RestoreWorkflowInstance rebuilds a workflow instance from persisted state.
//
// At least one task instance is required. Every task instance must be valid, belong to this workflow instance and
// reference a distinct task template.
func RestoreWorkflowInstance(
	id, orderID, workflowID kernel.UUID,
	status RunStatus,
	taskInstances []*TaskInstance,
) (*WorkflowInstance, error) {
	wi := &WorkflowInstance{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		wi.setIDs(id, orderID, workflowID),
		wi.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := wi.setTaskInstances(taskInstances); err != nil {
		return nil, err
	}

	return wi, nil
}

// Validate ensures the workflow instance was created through a constructor.
func (w *WorkflowInstance) Validate() error {
	if w == nil {
		return ErrWorkflowInstanceIsNotConstructed
	}
	return w.guard.Validate(ErrWorkflowInstanceIsNotConstructed)
}

// ID returns the workflow instance identifier.
func (w *WorkflowInstance) ID() kernel.UUID {
	return w.id
}

// OrderID returns the identifier of the owning order.
func (w *WorkflowInstance) OrderID() kernel.UUID {
	return w.orderID
}

// WorkflowID returns the workflow template the instance was created from.
func (w *WorkflowInstance) WorkflowID() kernel.UUID {
	return w.workflowID
}

// Status returns the current run status.
func (w *WorkflowInstance) Status() RunStatus {
	return w.status
}

// TaskInstances returns the task instances in storage order.
// Use OrderedTaskInstances when the execution order matters.
func (w *WorkflowInstance) TaskInstances() []*TaskInstance {
	res := make([]*TaskInstance, len(w.taskInstances))
	copy(res, w.taskInstances)
	return res
}

// OrderedTaskInstances returns the task instances in the order defined by the
// workflow template. The template must be the one the instance was created from.
func (w *WorkflowInstance) OrderedTaskInstances(workflow *template.Workflow) ([]*TaskInstance, error) {
	if err := workflow.Validate(); err != nil {
		return nil, err
	}
	if !workflow.ID().IsEqual(w.workflowID) {
		return nil, errs.NewInvariantIsBrokenErrorWithCause(
			"workflow template",
			fmt.Errorf("workflow instance %s was created from %s, not %s", w.id, w.workflowID, workflow.ID()),
		)
	}

	return template.SortByWorkflow(workflow, w.taskInstances, (*TaskInstance).TaskID)
}

func (w *WorkflowInstance) taskInstance(id kernel.UUID) *TaskInstance {
	for _, ti := range w.taskInstances {
		if ti.id.IsEqual(id) {
			return ti
		}
	}
	return nil
}

// activeTaskInstance returns the IN_PROGRESS task instance, if any.
func (w *WorkflowInstance) activeTaskInstance() *TaskInstance {
	for _, ti := range w.taskInstances {
		if ti.status == RunInProgress {
			return ti
		}
	}
	return nil
}

func (w *WorkflowInstance) setIDs(id, orderID, workflowID kernel.UUID) error {
	if err := errors.Join(id.Validate(), orderID.Validate(), workflowID.Validate()); err != nil {
		return err
	}
	w.id = id
	w.orderID = orderID
	w.workflowID = workflowID
	return nil
}

func (w *WorkflowInstance) setStatus(status RunStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	w.status = status
	return nil
}

func (w *WorkflowInstance) setTaskInstances(taskInstances []*TaskInstance) error {
	if len(taskInstances) == 0 {
		return errs.NewValueIsRequiredError("task instances")
	}

	seen := make(map[kernel.UUID]struct{}, len(taskInstances))
	res := make([]*TaskInstance, 0, len(taskInstances))

	for _, ti := range taskInstances {
		if err := ti.Validate(); err != nil {
			return err
		}
		if !ti.workflowInstanceID.IsEqual(w.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"task instances",
				fmt.Errorf("task instance %s belongs to workflow instance %s", ti.id, ti.workflowInstanceID),
			)
		}
		if _, ok := seen[ti.taskID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"task instances",
				fmt.Errorf("task %s is instantiated more than once", ti.taskID),
			)
		}
		seen[ti.taskID] = struct{}{}
		res = append(res, ti)
	}

	w.taskInstances = res
	return nil
}
