package template

import (
	"errors"
	"fmt"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when a Task was not built by NewTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask constructor")

// Task is a task template: one unit of work with an estimated duration.
type Task struct {
	id          kernel.UUID
	name        string
	description string

	// duration is the estimated effort in minutes
	duration int

	guard guard.ConstructorGuard
}

// NewTask creates a task template.
//
// Rules:
//   - id must be a valid UUID
//   - name must not be blank
//   - duration must not be negative
//
// Example:
//
//	oilChange, err := template.NewTask(kernel.NewUUID(), "Oil change", "Drain and refill engine oil", 30)
func NewTask(id kernel.UUID, name, description string, duration int) (*Task, error) {
	task := &Task{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		task.setID(id),
		task.setName(name),
		task.setDuration(duration),
	); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate ensures the task was created through NewTask.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// ID returns the task template identifier.
func (t *Task) ID() kernel.UUID {
	return t.id
}

// Name returns the task name.
func (t *Task) Name() string {
	return t.name
}

// Description returns the free-form task description.
func (t *Task) Description() string {
	return t.description
}

// Duration returns the estimated duration in minutes.
func (t *Task) Duration() int {
	return t.duration
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("task name")
	}
	t.name = name
	return nil
}

func (t *Task) setDuration(duration int) error {
	if duration < 0 {
		return errs.NewValueIsInvalidErrorWithCause("duration is invalid", fmt.Errorf("%d is less than 0", duration))
	}
	t.duration = duration
	return nil
}
