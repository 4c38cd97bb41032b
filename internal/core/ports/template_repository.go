package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
)

// TemplateRepository gives access to the task and workflow master data.
// Templates are read-only for order processing and only written by the
// catalog import.
type TemplateRepository interface {
	// GetWorkflows returns the workflow templates found for ids in one lookup.
	// Missing ids are not an error; callers compare the result with the request.
	GetWorkflows(ctx context.Context, ids []kernel.UUID) ([]*template.Workflow, error)

	// GetWorkflow returns a single workflow template.
	// Returns errs.ObjectNotFoundError if it does not exist.
	GetWorkflow(ctx context.Context, id kernel.UUID) (*template.Workflow, error)

	// GetTasks returns the task templates found for ids in one lookup.
	GetTasks(ctx context.Context, ids []kernel.UUID) ([]*template.Task, error)

	// SaveTask inserts or replaces a task template.
	SaveTask(ctx context.Context, task *template.Task) error

	// SaveWorkflow inserts or replaces a workflow template.
	SaveWorkflow(ctx context.Context, workflow *template.Workflow) error

	// IsWorkflowInstantiated reports whether any workflow instance references the template.
	IsWorkflowInstantiated(ctx context.Context, id kernel.UUID) (bool, error)
}
