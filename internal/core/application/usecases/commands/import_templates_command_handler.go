package commands

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

// ImportTemplatesCommandHandler writes a template catalog in one transaction.
type ImportTemplatesCommandHandler struct {
	uowFactory TemplateUoWFactory
}

// NewImportTemplatesCommandHandler creates a handler for catalog imports.
func NewImportTemplatesCommandHandler(uowFactory TemplateUoWFactory) ImportTemplatesCommandHandler {
	return ImportTemplatesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle saves every task, checks that each workflow task exists either in
// the catalog or in storage, then saves the workflows.
//
// The task list of a workflow template that already has instances cannot
// change: the ordering of those instances is resolved through it.
func (h ImportTemplatesCommandHandler) Handle(ctx context.Context, cmd ImportTemplatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TemplateRepository()

	imported := make(map[kernel.UUID]struct{})
	for _, task := range cmd.Tasks() {
		if err := repo.SaveTask(ctx, task); err != nil {
			return err
		}
		imported[task.ID()] = struct{}{}
	}

	workflows := cmd.Workflows()

	var external []kernel.UUID
	for _, id := range template.TaskIDs(workflows) {
		if _, ok := imported[id]; !ok {
			external = append(external, id)
		}
	}

	if len(external) > 0 {
		stored, err := repo.GetTasks(ctx, external)
		if err != nil {
			return err
		}
		if err := requireAll(external, stored); err != nil {
			return err
		}
	}

	for _, workflow := range workflows {
		if err := keepsInstantiatedTaskList(ctx, repo, workflow); err != nil {
			return err
		}
		if err := repo.SaveWorkflow(ctx, workflow); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func keepsInstantiatedTaskList(ctx context.Context, repo ports.TemplateRepository, workflow *template.Workflow) error {
	stored, err := repo.GetWorkflow(ctx, workflow.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if slices.Equal(stored.TaskIDs(), workflow.TaskIDs()) {
		return nil
	}

	instantiated, err := repo.IsWorkflowInstantiated(ctx, workflow.ID())
	if err != nil {
		return err
	}
	if instantiated {
		return errs.NewStateIsInvalidErrorWithCause(
			"workflow template",
			fmt.Errorf("workflow %s has instances - its task list cannot change", workflow.ID()),
		)
	}
	return nil
}

func requireAll(ids []kernel.UUID, found []*template.Task) error {
	have := make(map[kernel.UUID]struct{}, len(found))
	for _, t := range found {
		have[t.ID()] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return errs.NewObjectNotFoundErrorWithCause(
			"task template", strings.Join(missing, ", "),
			errors.New("referenced by an imported workflow but neither imported nor stored"),
		)
	}
	return nil
}
