package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand records the customer's approval of an order.
// The requested status must be IN_PROGRESS; completion is never set by hand.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand validates the order id and the requested status.
func NewApproveOrderCommand(orderID kernel.UUID, status order.Status) (ApproveOrderCommand, error) {
	var statusErr error
	if status != order.InProgress {
		statusErr = errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("orders can only be moved to %s, not %s", order.InProgress, status),
		)
	}

	if err := errors.Join(orderID.Validate(), statusErr); err != nil {
		return ApproveOrderCommand{}, err
	}

	return ApproveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the order to approve.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
