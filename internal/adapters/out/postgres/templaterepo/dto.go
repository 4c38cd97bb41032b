// Package templaterepo persists task and workflow templates.
package templaterepo

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/template"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TaskDTO represents the database structure for task templates.
type TaskDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Duration    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for task templates.
func (TaskDTO) TableName() string {
	return "tasks"
}

// WorkflowDTO represents the database structure for workflow templates.
// TaskIDs keeps the ordered task references as a text array.
type WorkflowDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	TaskIDs     pq.StringArray `gorm:"type:text[];not null"`
}

// TableName specifies the database table name for workflow templates.
func (WorkflowDTO) TableName() string {
	return "workflows"
}

func taskFromDomain(task *template.Task) TaskDTO {
	return TaskDTO{
		ID:          task.ID().Bytes(),
		Name:        task.Name(),
		Description: task.Description(),
		Duration:    task.Duration(),
	}
}

func taskToDomain(dto TaskDTO) (*template.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return template.NewTask(id, dto.Name, dto.Description, dto.Duration)
}

func workflowFromDomain(workflow *template.Workflow) WorkflowDTO {
	ids := workflow.TaskIDs()
	taskIDs := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		taskIDs = append(taskIDs, id.String())
	}

	return WorkflowDTO{
		ID:          workflow.ID().Bytes(),
		Name:        workflow.Name(),
		Description: workflow.Description(),
		TaskIDs:     taskIDs,
	}
}

// WorkflowToDomain rebuilds a workflow template from its row. Exported for
// read models that load workflows with raw SQL.
func WorkflowToDomain(dto WorkflowDTO) (*template.Workflow, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	taskIDs, err := kernel.UUIDsFromStrings(dto.TaskIDs)
	if err != nil {
		return nil, err
	}
	return template.NewWorkflow(id, dto.Name, dto.Description, taskIDs)
}
