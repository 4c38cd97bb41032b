package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrImportTemplatesCommandIsNotConstructed = errors.New(
	"ImportTemplatesCommand must be created via NewImportTemplatesCommand constructor",
)

// ImportTemplatesCommand carries a catalog of task and workflow templates to
// insert or overwrite. Workflows may reference tasks of the same catalog or
// tasks already stored.
type ImportTemplatesCommand struct { //nolint:recvcheck //using for validation
	tasks     []*template.Task
	workflows []*template.Workflow

	guard guard.ConstructorGuard
}

// NewImportTemplatesCommand validates the catalog. It must contain at least one
// template and no template id may appear twice.
func NewImportTemplatesCommand(tasks []*template.Task, workflows []*template.Workflow) (ImportTemplatesCommand, error) {
	if len(tasks) == 0 && len(workflows) == 0 {
		return ImportTemplatesCommand{}, errs.NewValueIsRequiredError("templates")
	}

	seen := make(map[kernel.UUID]struct{}, len(tasks)+len(workflows))
	check := func(id kernel.UUID) error {
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("templates", fmt.Errorf("%s is defined twice", id))
		}
		seen[id] = struct{}{}
		return nil
	}

	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return ImportTemplatesCommand{}, err
		}
		if err := check(t.ID()); err != nil {
			return ImportTemplatesCommand{}, err
		}
	}
	for _, w := range workflows {
		if err := w.Validate(); err != nil {
			return ImportTemplatesCommand{}, err
		}
		if err := check(w.ID()); err != nil {
			return ImportTemplatesCommand{}, err
		}
	}

	return ImportTemplatesCommand{
		tasks:     append([]*template.Task(nil), tasks...),
		workflows: append([]*template.Workflow(nil), workflows...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportTemplatesCommand) Validate() error {
	return c.guard.Validate(ErrImportTemplatesCommandIsNotConstructed)
}

// Tasks returns the task templates of the catalog.
func (c ImportTemplatesCommand) Tasks() []*template.Task {
	return append([]*template.Task(nil), c.tasks...)
}

// Workflows returns the workflow templates of the catalog.
func (c ImportTemplatesCommand) Workflows() []*template.Workflow {
	return append([]*template.Workflow(nil), c.workflows...)
}
