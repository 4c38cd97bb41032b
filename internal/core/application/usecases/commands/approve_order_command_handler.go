package commands

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/order"
)

// ApproveOrderCommandHandler moves an order from AWAITING_CUSTOMER to IN_PROGRESS.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle approves the order and returns it.
func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Approve(h.now()); err != nil {
		return nil, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
