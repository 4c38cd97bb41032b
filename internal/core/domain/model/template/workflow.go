package template

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrWorkflowIsNotConstructed is returned when a Workflow was not built by NewWorkflow.
var ErrWorkflowIsNotConstructed = errors.New("Workflow must be created via NewWorkflow constructor")

// Workflow is a workflow template: an ordered list of task template references.
//
// The position index is computed by the constructor, so resolving "the Nth
// task" or "the position of task X" never scans the list.
type Workflow struct {
	id          kernel.UUID
	name        string
	description string
	taskIDs     []kernel.UUID
	positions   map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewWorkflow creates a workflow template from an ordered list of task ids.
//
// Rules:
//   - id must be a valid UUID
//   - name must not be blank
//   - at least one task id is required, since an instance without tasks
//     could never complete
//   - every task id must be valid and appear only once, because a task
//     instance is located by its task template id
//
// Example:
//
//	inspection, err := template.NewWorkflow(
//	    kernel.NewUUID(),
//	    "Annual inspection",
//	    "Yearly safety inspection",
//	    []kernel.UUID{brakesID, lightsID, tyresID},
//	)
func NewWorkflow(id kernel.UUID, name, description string, taskIDs []kernel.UUID) (*Workflow, error) {
	workflow := &Workflow{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workflow.setID(id),
		workflow.setName(name),
		workflow.setTaskIDs(taskIDs),
	); err != nil {
		return nil, err
	}

	return workflow, nil
}

// Validate ensures the workflow was created through NewWorkflow.
func (w *Workflow) Validate() error {
	if w == nil {
		return ErrWorkflowIsNotConstructed
	}
	return w.guard.Validate(ErrWorkflowIsNotConstructed)
}

// ID returns the workflow template identifier.
func (w *Workflow) ID() kernel.UUID {
	return w.id
}

// Name returns the workflow name.
func (w *Workflow) Name() string {
	return w.name
}

// Description returns the free-form workflow description.
func (w *Workflow) Description() string {
	return w.description
}

// TaskIDs returns a copy of the ordered task template ids.
func (w *Workflow) TaskIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(w.taskIDs))
	copy(ids, w.taskIDs)
	return ids
}

// Len returns the number of tasks in the workflow.
func (w *Workflow) Len() int {
	return len(w.taskIDs)
}

// Position returns the zero-based position of a task template in this workflow.
// The second result is false when the task is not part of the workflow.
func (w *Workflow) Position(taskID kernel.UUID) (int, bool) {
	pos, ok := w.positions[taskID]
	return pos, ok
}

func (w *Workflow) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Workflow) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("workflow name")
	}
	w.name = name
	return nil
}

func (w *Workflow) setTaskIDs(taskIDs []kernel.UUID) error {
	if len(taskIDs) == 0 {
		return errs.NewValueIsRequiredError("task ids")
	}

	positions := make(map[kernel.UUID]int, len(taskIDs))
	ids := make([]kernel.UUID, 0, len(taskIDs))

	for i, taskID := range taskIDs {
		if err := taskID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("task ids", fmt.Errorf("item %d: %w", i, err))
		}
		if first, ok := positions[taskID]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"task ids",
				fmt.Errorf("task %s is listed at positions %d and %d", taskID, first, i),
			)
		}
		positions[taskID] = i
		ids = append(ids, taskID)
	}

	w.taskIDs = ids
	w.positions = positions
	return nil
}
