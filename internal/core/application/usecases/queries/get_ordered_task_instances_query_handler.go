package queries

import (
	"context"
	"database/sql"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderedTaskInstancesQueryHandler lists task instances in template order.
type GetOrderedTaskInstancesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderedTaskInstancesQueryHandler creates the handler.
func NewGetOrderedTaskInstancesQueryHandler(db *gorm.DB) GetOrderedTaskInstancesQueryHandler {
	return GetOrderedTaskInstancesQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the workflow instance does not exist
// and InvariantIsBrokenError when a template task has no instance.
func (h GetOrderedTaskInstancesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderedTaskInstancesQuery,
) ([]TaskInstanceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var response []TaskInstanceResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		graph, err := loadWorkflowInstances(ctx, tx, "wi.id", query.WorkflowInstanceID().Bytes())
		if err != nil {
			return err
		}
		if len(graph.workflows) == 0 {
			return errs.NewObjectNotFoundErrorWithCause("workflow instance", query.WorkflowInstanceID(), sql.ErrNoRows)
		}

		if err = loadTaskInstances(ctx, tx, graph); err != nil {
			return err
		}

		workflows, err := graph.build()
		if err != nil {
			return err
		}

		response = workflows[0].TaskInstances
		return nil
	}, snapshot)
	if err != nil {
		return nil, err
	}

	return response, nil
}
