package order

import (
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	AwaitingCustomer ──> InProgress ──> Completed
//
// AwaitingCustomer is the initial state: workflow instances can be started but
// no task instance may change. InProgress is entered by customer approval.
// Completed is final and only reached through the completion cascade.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// AwaitingCustomer is the status of a freshly created order.
	AwaitingCustomer

	// InProgress means the customer approved the work and tasks are being worked off.
	InProgress

	// Completed means every workflow instance of the order is completed.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "UNKNOWN",
		AwaitingCustomer: "AWAITING_CUSTOMER",
		InProgress:       "IN_PROGRESS",
		Completed:        "COMPLETED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AwaitingCustomer: "AWAITING_CUSTOMER",
		InProgress:       "IN_PROGRESS",
		Completed:        "COMPLETED",
	}
}

// Statuses returns the valid order statuses in lifecycle order.
func Statuses() []Status {
	return []Status{AwaitingCustomer, InProgress, Completed}
}

// ParseStatus converts the persisted or wire representation ("IN_PROGRESS")
// into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the status is one of the defined order states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateStart checks that workflow instances of the order may be started.
// Starting is only allowed before the customer approved the order.
func (s Status) ValidateStart() error {
	if s != AwaitingCustomer {
		return errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order is already %s", s),
		)
	}
	return nil
}

// ValidateTaskUpdate checks that a task instance of the order may change.
// Task instances are frozen while the order awaits the customer and after it completed.
func (s Status) ValidateTaskUpdate(taskInstanceID kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == AwaitingCustomer || s == Completed {
		return errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order is %s - cannot update task instance %s", s, taskInstanceID),
		)
	}
	return nil
}

// Approve transitions AwaitingCustomer to InProgress.
func (s Status) Approve() (Status, error) {
	if s != AwaitingCustomer {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order is %s - only %s orders can be approved", s, AwaitingCustomer),
		)
	}
	return InProgress, nil
}

// Complete transitions InProgress to Completed.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, errs.NewStateIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("order is %s - only %s orders can be completed", s, InProgress),
		)
	}
	return Completed, nil
}
