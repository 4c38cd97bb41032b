package queries

import (
	"context"
	"database/sql"
	"errors"

	"workshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler builds order rollups from the database.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order rollups.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns the rollup or an ObjectNotFoundError when the order does not exist.
// A workflow instance missing a task instance of its template is reported as a
// broken invariant. All rows are read from one snapshot.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	var response GetOrderDetailQueryResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := tx.Raw(`
			SELECT
				id,
				car_id,
				customer_id,
				status,
				total_time,
				created_at,
				updated_at
			FROM orders
			WHERE id = ?
		`, query.OrderID().Bytes()).Row()

		o, err := scanOrder(row)
		if errors.Is(err, sql.ErrNoRows) {
			return errs.NewObjectNotFoundErrorWithCause("order", query.OrderID(), err)
		}
		if err != nil {
			return err
		}

		graph, err := loadWorkflowInstances(ctx, tx, "wi.order_id", query.OrderID().Bytes())
		if err != nil {
			return err
		}
		if err = loadTaskInstances(ctx, tx, graph); err != nil {
			return err
		}

		workflows, err := graph.build()
		if err != nil {
			return err
		}

		response = GetOrderDetailQueryResponse{
			OrderResponse:     o,
			WorkflowInstances: workflows,
		}
		return nil
	}, snapshot)
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	return response, nil
}
