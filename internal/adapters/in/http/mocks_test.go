package http_test

import (
	"context"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockApproveOrderHandler struct{ mock.Mock }

func (m *MockApproveOrderHandler) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockStartWorkflowInstanceHandler struct{ mock.Mock }

func (m *MockStartWorkflowInstanceHandler) Handle(
	ctx context.Context,
	cmd commands.StartWorkflowInstanceCommand,
) (*order.WorkflowInstance, error) {
	args := m.Called(ctx, cmd)
	wi, _ := args.Get(0).(*order.WorkflowInstance)
	return wi, args.Error(1)
}

type MockUpdateTaskInstanceHandler struct{ mock.Mock }

func (m *MockUpdateTaskInstanceHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateTaskInstanceCommand,
) (*order.TaskInstance, error) {
	args := m.Called(ctx, cmd)
	ti, _ := args.Get(0).(*order.TaskInstance)
	return ti, args.Error(1)
}

type MockGetOrdersHandler struct{ mock.Mock }

func (m *MockGetOrdersHandler) Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.OrderResponse)
	return orders, args.Error(1)
}

type MockGetOrderDetailHandler struct{ mock.Mock }

func (m *MockGetOrderDetailHandler) Handle(
	ctx context.Context,
	query queries.GetOrderDetailQuery,
) (queries.GetOrderDetailQueryResponse, error) {
	args := m.Called(ctx, query)
	detail, _ := args.Get(0).(queries.GetOrderDetailQueryResponse)
	return detail, args.Error(1)
}

type MockGetOrderedTaskInstancesHandler struct{ mock.Mock }

func (m *MockGetOrderedTaskInstancesHandler) Handle(
	ctx context.Context,
	query queries.GetOrderedTaskInstancesQuery,
) ([]queries.TaskInstanceResponse, error) {
	args := m.Called(ctx, query)
	tasks, _ := args.Get(0).([]queries.TaskInstanceResponse)
	return tasks, args.Error(1)
}
