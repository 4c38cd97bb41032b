package queries

import (
	"errors"

	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/guard"
)

var ErrGetOrdersSummaryQueryIsNotConstructed = errors.New(
	"GetOrdersSummaryQuery must be created via NewGetOrdersSummaryQuery constructor",
)

// GetOrdersSummaryQuery counts orders per status.
type GetOrdersSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersSummaryQuery creates a parameterless summary query.
func NewGetOrdersSummaryQuery() GetOrdersSummaryQuery {
	return GetOrdersSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersSummaryQueryIsNotConstructed)
}

// GetOrdersSummaryQueryResponse is the number of orders in one status.
type GetOrdersSummaryQueryResponse struct {
	Status order.Status
	Count  int
}
