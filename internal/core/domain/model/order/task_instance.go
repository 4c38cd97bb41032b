package order

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

// ErrTaskInstanceIsNotConstructed is returned when a TaskInstance was not built
// by NewTaskInstance or RestoreTaskInstance.
var ErrTaskInstanceIsNotConstructed = errors.New("TaskInstance must be created via NewTaskInstance constructor")

// TaskInstance is the stateful run of one task template inside a workflow instance.
// Its position in the run is not stored; it follows from the workflow template.
type TaskInstance struct {
	id                 kernel.UUID
	workflowInstanceID kernel.UUID
	taskID             kernel.UUID
	status             RunStatus

	// comments are free-form notes of the mechanic, nil when absent
	comments *string

	// startedAt is set when the instance first becomes IN_PROGRESS
	startedAt *time.Time

	// completedAt is set when the instance becomes COMPLETED
	completedAt *time.Time

	guard guard.ConstructorGuard
}

// NewTaskInstance creates a PENDING task instance without timestamps.
func NewTaskInstance(id, workflowInstanceID, taskID kernel.UUID) (*TaskInstance, error) {
	return RestoreTaskInstance(id, workflowInstanceID, taskID, RunPending, nil, nil, nil)
}

// RestoreTaskInstance rebuilds a task instance from persisted state.
func RestoreTaskInstance(
	id, workflowInstanceID, taskID kernel.UUID,
	status RunStatus,
	comments *string,
	startedAt, completedAt *time.Time,
) (*TaskInstance, error) {
	if err := errors.Join(
		id.Validate(),
		workflowInstanceID.Validate(),
		taskID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &TaskInstance{
		id:                 id,
		workflowInstanceID: workflowInstanceID,
		taskID:             taskID,
		status:             status,
		comments:           copyString(comments),
		startedAt:          copyTime(startedAt),
		completedAt:        copyTime(completedAt),
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the task instance was created through a constructor.
func (t *TaskInstance) Validate() error {
	if t == nil {
		return ErrTaskInstanceIsNotConstructed
	}
	return t.guard.Validate(ErrTaskInstanceIsNotConstructed)
}

// ID returns the task instance identifier.
func (t *TaskInstance) ID() kernel.UUID {
	return t.id
}

// WorkflowInstanceID returns the identifier of the owning workflow instance.
func (t *TaskInstance) WorkflowInstanceID() kernel.UUID {
	return t.workflowInstanceID
}

// TaskID returns the task template the instance was created from.
func (t *TaskInstance) TaskID() kernel.UUID {
	return t.taskID
}

// Status returns the current run status.
func (t *TaskInstance) Status() RunStatus {
	return t.status
}

// Comments returns the mechanic's notes or nil.
func (t *TaskInstance) Comments() *string {
	return copyString(t.comments)
}

// StartedAt returns when the instance was first started, nil if never.
func (t *TaskInstance) StartedAt() *time.Time {
	return copyTime(t.startedAt)
}

// CompletedAt returns when the instance was completed, nil if not completed.
func (t *TaskInstance) CompletedAt() *time.Time {
	return copyTime(t.completedAt)
}

// moveTo writes the status and keeps the timestamps consistent with it.
// Transition legality is checked by the caller.
func (t *TaskInstance) moveTo(status RunStatus, at time.Time) {
	switch status {
	case RunPending:
		t.startedAt = nil
		t.completedAt = nil
	case RunInProgress:
		if t.startedAt == nil {
			t.startedAt = copyTime(&at)
		}
		t.completedAt = nil
	case RunCompleted:
		if t.startedAt == nil {
			t.startedAt = copyTime(&at)
		}
		t.completedAt = copyTime(&at)
	case RunUnknown:
	}
	t.status = status
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
