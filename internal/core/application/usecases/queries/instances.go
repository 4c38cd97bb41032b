package queries

import (
	"context"
	"database/sql"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/template"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// instanceGraph accumulates workflow instances and groups their task
// instances under them. Workflow instances keep the order they were added in.
type instanceGraph struct {
	workflows []WorkflowInstanceResponse
	templates []*template.Workflow
	index     map[kernel.UUID]int
	tasks     map[kernel.UUID][]TaskInstanceResponse
}

func newInstanceGraph() *instanceGraph {
	return &instanceGraph{
		index: make(map[kernel.UUID]int),
		tasks: make(map[kernel.UUID][]TaskInstanceResponse),
	}
}

func (g *instanceGraph) addWorkflow(wi WorkflowInstanceResponse, workflow *template.Workflow) {
	g.index[wi.ID] = len(g.workflows)
	g.workflows = append(g.workflows, wi)
	g.templates = append(g.templates, workflow)
}

func (g *instanceGraph) addTask(workflowInstanceID kernel.UUID, ti TaskInstanceResponse) {
	g.tasks[workflowInstanceID] = append(g.tasks[workflowInstanceID], ti)
}

func (g *instanceGraph) ids() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.workflows))
	for _, wi := range g.workflows {
		ids = append(ids, wi.ID.Bytes())
	}
	return ids
}

// build places every task instance list in template order.
func (g *instanceGraph) build() ([]WorkflowInstanceResponse, error) {
	result := make([]WorkflowInstanceResponse, 0, len(g.workflows))
	for i, wi := range g.workflows {
		ordered, err := template.SortByWorkflow(g.templates[i], g.tasks[wi.ID], func(ti TaskInstanceResponse) kernel.UUID {
			return ti.TaskID
		})
		if err != nil {
			return nil, err
		}
		wi.TaskInstances = ordered
		result = append(result, wi)
	}
	return result, nil
}

// snapshot is used by reads spanning several statements, so a cascade
// committed between them is either fully visible or not at all.
var snapshot = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// loadWorkflowInstances reads the workflow instances matching column = value,
// ordered by template name, together with their templates.
func loadWorkflowInstances(ctx context.Context, db *gorm.DB, column string, value uuid.UUID) (*instanceGraph, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			wi.id,
			wi.workflow_id,
			w.name,
			w.description,
			w.task_ids,
			wi.status
		FROM workflow_instances wi
		JOIN workflows w ON w.id = wi.workflow_id
		WHERE `+column+` = ?
		ORDER BY w.name, wi.id
	`, value).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	graph := newInstanceGraph()
	for rows.Next() {
		var (
			wi             WorkflowInstanceResponse
			id, workflowID uuid.UUID
			taskIDs        pq.StringArray
			status         string
		)

		if err = rows.Scan(&id, &workflowID, &wi.Name, &wi.Description, &taskIDs, &status); err != nil {
			return nil, err
		}

		if wi.ID, err = kernelID(id); err != nil {
			return nil, err
		}
		if wi.WorkflowID, err = kernelID(workflowID); err != nil {
			return nil, err
		}
		if wi.Status, err = order.ParseRunStatus(status); err != nil {
			return nil, err
		}

		ids, idErr := kernel.UUIDsFromStrings(taskIDs)
		if idErr != nil {
			return nil, idErr
		}
		workflow, wfErr := template.NewWorkflow(wi.WorkflowID, wi.Name, wi.Description, ids)
		if wfErr != nil {
			return nil, wfErr
		}

		graph.addWorkflow(wi, workflow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return graph, nil
}

// loadTaskInstances reads the task instances of every workflow instance in the graph.
func loadTaskInstances(ctx context.Context, db *gorm.DB, graph *instanceGraph) error {
	if len(graph.workflows) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ti.id,
			ti.workflow_instance_id,
			ti.task_id,
			t.name,
			t.description,
			t.duration,
			ti.status,
			ti.comments,
			ti.started_at,
			ti.completed_at
		FROM task_instances ti
		JOIN tasks t ON t.id = ti.task_id
		WHERE ti.workflow_instance_id IN ?
		ORDER BY ti.id
	`, graph.ids()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ti                     TaskInstanceResponse
			id, wiID, taskID       uuid.UUID
			status                 string
			comments               *string
			startedAt, completedAt *time.Time
		)

		err = rows.Scan(
			&id,
			&wiID,
			&taskID,
			&ti.Name,
			&ti.Description,
			&ti.Duration,
			&status,
			&comments,
			&startedAt,
			&completedAt,
		)
		if err != nil {
			return err
		}

		if ti.ID, err = kernelID(id); err != nil {
			return err
		}
		if ti.TaskID, err = kernelID(taskID); err != nil {
			return err
		}
		if ti.Status, err = order.ParseRunStatus(status); err != nil {
			return err
		}
		ti.Comments = comments
		ti.StartedAt = startedAt
		ti.CompletedAt = completedAt

		workflowInstanceID, idErr := kernelID(wiID)
		if idErr != nil {
			return idErr
		}
		graph.addTask(workflowInstanceID, ti)
	}

	return rows.Err()
}
