// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between the order graph and its three tables.
package orderrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID             `gorm:"type:uuid;primaryKey"`
	CarID             uuid.UUID             `gorm:"type:uuid;not null"`
	CustomerID        uuid.UUID             `gorm:"type:uuid;not null"`
	Status            string                `gorm:"type:varchar(32);not null;index"`
	TotalTime         int                   `gorm:"type:int;not null"`
	CreatedAt         time.Time             `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         time.Time             `gorm:"not null;autoUpdateTime:false"`
	WorkflowInstances []WorkflowInstanceDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// WorkflowInstanceDTO represents the database structure for workflow instances.
type WorkflowInstanceDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	WorkflowID    uuid.UUID         `gorm:"type:uuid;not null"`
	Status        string            `gorm:"type:varchar(32);not null"`
	TaskInstances []TaskInstanceDTO `gorm:"foreignKey:WorkflowInstanceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for workflow instance entities.
func (WorkflowInstanceDTO) TableName() string {
	return "workflow_instances"
}

// TaskInstanceDTO represents the database structure for task instances.
// The execution order is not stored; it is derived from the workflow template.
type TaskInstanceDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WorkflowInstanceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	TaskID             uuid.UUID  `gorm:"type:uuid;not null"`
	Status             string     `gorm:"type:varchar(32);not null"`
	Comments           *string    `gorm:"type:text"`
	StartedAt          *time.Time `gorm:"type:timestamptz"`
	CompletedAt        *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for task instance entities.
func (TaskInstanceDTO) TableName() string {
	return "task_instances"
}

// fromDomain converts an order aggregate with its instance graph to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	wis := aggregate.WorkflowInstances()
	wiDTOs := make([]WorkflowInstanceDTO, 0, len(wis))

	for _, wi := range wis {
		tis := wi.TaskInstances()
		tiDTOs := make([]TaskInstanceDTO, 0, len(tis))
		for _, ti := range tis {
			tiDTOs = append(tiDTOs, TaskInstanceDTO{
				ID:                 ti.ID().Bytes(),
				WorkflowInstanceID: wi.ID().Bytes(),
				TaskID:             ti.TaskID().Bytes(),
				Status:             ti.Status().String(),
				Comments:           ti.Comments(),
				StartedAt:          ti.StartedAt(),
				CompletedAt:        ti.CompletedAt(),
			})
		}

		wiDTOs = append(wiDTOs, WorkflowInstanceDTO{
			ID:            wi.ID().Bytes(),
			OrderID:       aggregate.ID().Bytes(),
			WorkflowID:    wi.WorkflowID().Bytes(),
			Status:        wi.Status().String(),
			TaskInstances: tiDTOs,
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CarID:             aggregate.CarID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		Status:            aggregate.Status().String(),
		TotalTime:         aggregate.TotalTime(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		WorkflowInstances: wiDTOs,
	}
}

// toDomain rebuilds the order aggregate from its rows using the Restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	wis := make([]*order.WorkflowInstance, 0, len(dto.WorkflowInstances))
	for _, wiDTO := range dto.WorkflowInstances {
		wi, err := workflowInstanceToDomain(wiDTO)
		if err != nil {
			return nil, err
		}
		wis = append(wis, wi)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	carID, err := kernel.UUIDFromBytes(dto.CarID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, carID, customerID, status, dto.TotalTime, dto.CreatedAt, dto.UpdatedAt, wis)
}

func workflowInstanceToDomain(dto WorkflowInstanceDTO) (*order.WorkflowInstance, error) {
	tis := make([]*order.TaskInstance, 0, len(dto.TaskInstances))
	for _, tiDTO := range dto.TaskInstances {
		ti, err := taskInstanceToDomain(tiDTO)
		if err != nil {
			return nil, err
		}
		tis = append(tis, ti)
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	workflowID, err := kernel.UUIDFromBytes(dto.WorkflowID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseRunStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreWorkflowInstance(id, orderID, workflowID, status, tis)
}

func taskInstanceToDomain(dto TaskInstanceDTO) (*order.TaskInstance, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	wiID, err := kernel.UUIDFromBytes(dto.WorkflowInstanceID[:])
	if err != nil {
		return nil, err
	}
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseRunStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreTaskInstance(id, wiID, taskID, status, dto.Comments, dto.StartedAt, dto.CompletedAt)
}
