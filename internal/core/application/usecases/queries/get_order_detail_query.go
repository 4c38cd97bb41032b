package queries

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery asks for the full rollup of one order: the order row,
// its workflow instances and their task instances, each enriched with the
// template name, description and duration.
//
// Example:
//
//	query, err := NewGetOrderDetailQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	detail, err := handler.Handle(ctx, query)
//	for _, wi := range detail.WorkflowInstances {
//	    fmt.Printf("%s: %s\n", wi.Name, wi.Status)
//	}
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a rollup query for the given order.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the order to report on.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailQueryResponse is the order rollup. Workflow instances are
// ordered by template name, task instances by their template position.
type GetOrderDetailQueryResponse struct {
	OrderResponse

	WorkflowInstances []WorkflowInstanceResponse
}
