package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes orders.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order. Returns errs.ObjectNotFoundError when it does not exist.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
