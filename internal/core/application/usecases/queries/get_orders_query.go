package queries

import (
	"errors"

	"workshop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists every order without its instances.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a parameterless order listing query.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}
