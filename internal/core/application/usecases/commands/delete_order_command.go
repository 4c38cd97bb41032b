package commands

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order with all of its instances.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
