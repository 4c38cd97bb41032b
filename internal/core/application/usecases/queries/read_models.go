package queries

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderResponse is the order row as seen by readers.
type OrderResponse struct {
	ID         kernel.UUID
	CarID      kernel.UUID
	CustomerID kernel.UUID
	Status     order.Status
	TotalTime  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WorkflowInstanceResponse is a workflow instance enriched with its template.
type WorkflowInstanceResponse struct {
	ID            kernel.UUID
	WorkflowID    kernel.UUID
	Name          string
	Description   string
	Status        order.RunStatus
	TaskInstances []TaskInstanceResponse
}

// TaskInstanceResponse is a task instance enriched with its template.
type TaskInstanceResponse struct {
	ID          kernel.UUID
	TaskID      kernel.UUID
	Name        string
	Description string
	Duration    int
	Status      order.RunStatus
	Comments    *string
	StartedAt   *time.Time
	CompletedAt *time.Time
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (OrderResponse, error) {
	var (
		resp                  OrderResponse
		id, carID, customerID uuid.UUID
		status                string
	)

	if err := row.Scan(&id, &carID, &customerID, &status, &resp.TotalTime, &resp.CreatedAt, &resp.UpdatedAt); err != nil {
		return OrderResponse{}, err
	}

	var err error
	if resp.ID, err = kernelID(id); err != nil {
		return OrderResponse{}, err
	}
	if resp.CarID, err = kernelID(carID); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernelID(customerID); err != nil {
		return OrderResponse{}, err
	}
	if resp.Status, err = order.ParseStatus(status); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}

func kernelID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
