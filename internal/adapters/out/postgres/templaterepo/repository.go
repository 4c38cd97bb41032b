package templaterepo

import (
	"context"
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTemplateRepository implements TemplateRepository using GORM.
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GORM template repository.
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// GetWorkflows loads the workflow templates for ids in a single query.
func (r *GormTemplateRepository) GetWorkflows(ctx context.Context, ids []kernel.UUID) ([]*template.Workflow, error) {
	if len(ids) == 0 {
		return []*template.Workflow{}, nil
	}

	var dtos []WorkflowDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	workflows := make([]*template.Workflow, 0, len(dtos))
	for _, dto := range dtos {
		w, err := WorkflowToDomain(dto)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, w)
	}

	return workflows, nil
}

// GetWorkflow loads one workflow template.
func (r *GormTemplateRepository) GetWorkflow(ctx context.Context, id kernel.UUID) (*template.Workflow, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkflowDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("workflow template", id.String(), err)
		}
		return nil, err
	}

	return WorkflowToDomain(dto)
}

// GetTasks loads the task templates for ids in a single query.
func (r *GormTemplateRepository) GetTasks(ctx context.Context, ids []kernel.UUID) ([]*template.Task, error) {
	if len(ids) == 0 {
		return []*template.Task{}, nil
	}

	var dtos []TaskDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*template.Task, 0, len(dtos))
	for _, dto := range dtos {
		t, err := taskToDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	return tasks, nil
}

// SaveTask inserts the task template or overwrites the stored one.
func (r *GormTemplateRepository) SaveTask(ctx context.Context, task *template.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(task)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// SaveWorkflow inserts the workflow template or overwrites the stored one.
func (r *GormTemplateRepository) SaveWorkflow(ctx context.Context, workflow *template.Workflow) error {
	if err := workflow.Validate(); err != nil {
		return err
	}

	dto := workflowFromDomain(workflow)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// IsWorkflowInstantiated reports whether a workflow instance of any order references the template.
func (r *GormTemplateRepository) IsWorkflowInstantiated(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Table("workflow_instances").
		Where("workflow_id = ?", id.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	res := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		res = append(res, id.Bytes())
	}
	return res
}
