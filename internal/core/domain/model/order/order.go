package order

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of a customer's service request for one car.
// It owns its workflow instances, which in turn own their task instances;
// every state change of the graph goes through the order.
type Order struct {
	id         kernel.UUID
	carID      kernel.UUID
	customerID kernel.UUID
	status     Status

	// totalTime is the sum of the durations of all instantiated tasks, in minutes
	totalTime int

	createdAt time.Time
	updatedAt time.Time

	workflowInstances []*WorkflowInstance

	guard guard.ConstructorGuard
}

// NewOrder creates an order awaiting the customer.
//
// Rules:
//   - id, carID and customerID must be valid UUIDs
//   - totalTime must not be negative
//   - at least one workflow instance is required and all of them must belong to id
//
// Example:
//
//	o, err := order.NewOrder(orderID, carID, customerID, 90, []*order.WorkflowInstance{wi}, time.Now())
func NewOrder(
	id, carID, customerID kernel.UUID,
	totalTime int,
	workflowInstances []*WorkflowInstance,
	at time.Time,
) (*Order, error) {
	return RestoreOrder(id, carID, customerID, AwaitingCustomer, totalTime, at, at, workflowInstances)
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(
	id, carID, customerID kernel.UUID,
	status Status,
	totalTime int,
	createdAt, updatedAt time.Time,
	workflowInstances []*WorkflowInstance,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, carID, customerID),
		o.setStatus(status),
		o.setTotalTime(totalTime),
	); err != nil {
		return nil, err
	}

	if err := o.setWorkflowInstances(workflowInstances); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CarID returns the serviced car.
func (o *Order) CarID() kernel.UUID {
	return o.carID
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// TotalTime returns the estimated duration of all tasks in minutes.
func (o *Order) TotalTime() int {
	return o.totalTime
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last change of the order graph.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// WorkflowInstances returns the workflow instances in creation order.
func (o *Order) WorkflowInstances() []*WorkflowInstance {
	res := make([]*WorkflowInstance, len(o.workflowInstances))
	copy(res, o.workflowInstances)
	return res
}

// WorkflowInstance returns the workflow instance with the given id.
func (o *Order) WorkflowInstance(id kernel.UUID) (*WorkflowInstance, error) {
	for _, wi := range o.workflowInstances {
		if wi.id.IsEqual(id) {
			return wi, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause(
		"workflow instance", id,
		fmt.Errorf("not part of order %s", o.id),
	)
}

// WorkflowInstanceOfTask returns the workflow instance owning the given task instance.
func (o *Order) WorkflowInstanceOfTask(taskInstanceID kernel.UUID) (*WorkflowInstance, error) {
	for _, wi := range o.workflowInstances {
		if wi.taskInstance(taskInstanceID) != nil {
			return wi, nil
		}
	}
	return nil, errs.NewObjectNotFoundErrorWithCause(
		"task instance", taskInstanceID,
		fmt.Errorf("not part of order %s", o.id),
	)
}

// Approve records the customer's approval: AWAITING_CUSTOMER becomes IN_PROGRESS
// and task instances may change from now on.
func (o *Order) Approve(at time.Time) error {
	next, err := o.status.Approve()
	if err != nil {
		return err
	}
	o.status = next
	o.updatedAt = at
	return nil
}

func (o *Order) allWorkflowsCompleted() bool {
	for _, wi := range o.workflowInstances {
		if wi.status != RunCompleted {
			return false
		}
	}
	return true
}

func (o *Order) setIDs(id, carID, customerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), carID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.carID = carID
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalTime(totalTime int) error {
	if totalTime < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total time is invalid",
			fmt.Errorf("%d is less than 0", totalTime),
		)
	}
	o.totalTime = totalTime
	return nil
}

func (o *Order) setWorkflowInstances(workflowInstances []*WorkflowInstance) error {
	if len(workflowInstances) == 0 {
		return errs.NewValueIsRequiredError("workflow instances")
	}

	res := make([]*WorkflowInstance, 0, len(workflowInstances))
	for _, wi := range workflowInstances {
		if err := wi.Validate(); err != nil {
			return err
		}
		if !wi.orderID.IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"workflow instances",
				fmt.Errorf("workflow instance %s belongs to order %s", wi.id, wi.orderID),
			)
		}
		res = append(res, wi)
	}

	o.workflowInstances = res
	return nil
}
