package http

import (
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toKernel converts a bound UUID. The nil UUID becomes the zero kernel.UUID,
// which the command and query constructors reject.
func toKernel(id openapi_types.UUID) kernel.UUID {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}
	}
	return converted
}

func orderFromDomain(o *order.Order) servers.Order {
	return servers.Order{
		Id:         o.ID().Bytes(),
		CarId:      o.CarID().Bytes(),
		CustomerId: o.CustomerID().Bytes(),
		Status:     servers.OrderStatus(o.Status().String()),
		TotalTime:  o.TotalTime(),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
}

func orderGraphFromDomain(o *order.Order) servers.OrderGraph {
	workflows := make([]servers.WorkflowInstanceGraph, len(o.WorkflowInstances()))
	for i, wi := range o.WorkflowInstances() {
		tasks := make([]servers.TaskInstanceState, len(wi.TaskInstances()))
		for j, ti := range wi.TaskInstances() {
			tasks[j] = taskInstanceStateFromDomain(ti)
		}
		workflows[i] = servers.WorkflowInstanceGraph{
			Id:            wi.ID().Bytes(),
			WorkflowId:    wi.WorkflowID().Bytes(),
			Status:        servers.RunStatus(wi.Status().String()),
			TaskInstances: tasks,
		}
	}

	return servers.OrderGraph{
		Id:                o.ID().Bytes(),
		CarId:             o.CarID().Bytes(),
		CustomerId:        o.CustomerID().Bytes(),
		Status:            servers.OrderStatus(o.Status().String()),
		TotalTime:         o.TotalTime(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		WorkflowInstances: workflows,
	}
}

func orderFromReadModel(o queries.OrderResponse) servers.Order {
	return servers.Order{
		Id:         o.ID.Bytes(),
		CarId:      o.CarID.Bytes(),
		CustomerId: o.CustomerID.Bytes(),
		Status:     servers.OrderStatus(o.Status.String()),
		TotalTime:  o.TotalTime,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func orderDetailFromReadModel(d queries.GetOrderDetailQueryResponse) servers.OrderDetail {
	workflows := make([]servers.WorkflowInstance, len(d.WorkflowInstances))
	for i, wi := range d.WorkflowInstances {
		workflows[i] = servers.WorkflowInstance{
			Id:            wi.ID.Bytes(),
			WorkflowId:    wi.WorkflowID.Bytes(),
			Name:          wi.Name,
			Description:   wi.Description,
			Status:        servers.RunStatus(wi.Status.String()),
			TaskInstances: taskInstancesFromReadModel(wi.TaskInstances),
		}
	}

	return servers.OrderDetail{
		Id:                d.ID.Bytes(),
		CarId:             d.CarID.Bytes(),
		CustomerId:        d.CustomerID.Bytes(),
		Status:            servers.OrderStatus(d.Status.String()),
		TotalTime:         d.TotalTime,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		WorkflowInstances: workflows,
	}
}

func taskInstancesFromReadModel(tasks []queries.TaskInstanceResponse) []servers.TaskInstance {
	response := make([]servers.TaskInstance, len(tasks))
	for i, ti := range tasks {
		response[i] = servers.TaskInstance{
			Id:          ti.ID.Bytes(),
			TaskId:      ti.TaskID.Bytes(),
			Name:        ti.Name,
			Description: ti.Description,
			Duration:    ti.Duration,
			Status:      servers.RunStatus(ti.Status.String()),
			Comments:    ti.Comments,
			StartedAt:   ti.StartedAt,
			CompletedAt: ti.CompletedAt,
		}
	}
	return response
}

func workflowInstanceStateFromDomain(wi *order.WorkflowInstance) servers.WorkflowInstanceState {
	return servers.WorkflowInstanceState{
		Id:         wi.ID().Bytes(),
		OrderId:    wi.OrderID().Bytes(),
		WorkflowId: wi.WorkflowID().Bytes(),
		Status:     servers.RunStatus(wi.Status().String()),
	}
}

func taskInstanceStateFromDomain(ti *order.TaskInstance) servers.TaskInstanceState {
	return servers.TaskInstanceState{
		Id:                 ti.ID().Bytes(),
		WorkflowInstanceId: ti.WorkflowInstanceID().Bytes(),
		TaskId:             ti.TaskID().Bytes(),
		Status:             servers.RunStatus(ti.Status().String()),
		Comments:           ti.Comments(),
		StartedAt:          ti.StartedAt(),
		CompletedAt:        ti.CompletedAt(),
	}
}
