package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to open a service order for a car.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(carID, customerID, []kernel.UUID{inspectionID, oilChangeID})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	carID       kernel.UUID
	customerID  kernel.UUID
	workflowIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the identifiers of the request.
// workflowIDs must be non-empty and free of duplicates.
func NewCreateOrderCommand(carID, customerID kernel.UUID, workflowIDs []kernel.UUID) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarID(carID),
		cmd.setCustomerID(customerID),
		cmd.setWorkflowIDs(workflowIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CarID returns the car to be serviced.
func (c CreateOrderCommand) CarID() kernel.UUID {
	return c.carID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// WorkflowIDs returns the requested workflow templates in request order.
func (c CreateOrderCommand) WorkflowIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.workflowIDs))
	copy(ids, c.workflowIDs)
	return ids
}

func (c *CreateOrderCommand) setCarID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("car id", err)
	}
	c.carID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setWorkflowIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("workflow ids")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("workflow ids", fmt.Errorf("item %d: %w", i, err))
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("workflow ids", fmt.Errorf("%s is requested twice", id))
		}
		seen[id] = struct{}{}
	}

	c.workflowIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
