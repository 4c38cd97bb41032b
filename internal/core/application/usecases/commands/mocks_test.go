package commands_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByWorkflowInstance(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByTaskInstance(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTemplateRepository struct{ mock.Mock }

func (m *MockTemplateRepository) GetWorkflows(ctx context.Context, ids []kernel.UUID) ([]*template.Workflow, error) {
	args := m.Called(ctx, ids)
	w, _ := args.Get(0).([]*template.Workflow)
	return w, args.Error(1)
}

func (m *MockTemplateRepository) GetWorkflow(ctx context.Context, id kernel.UUID) (*template.Workflow, error) {
	args := m.Called(ctx, id)
	w, _ := args.Get(0).(*template.Workflow)
	return w, args.Error(1)
}

func (m *MockTemplateRepository) GetTasks(ctx context.Context, ids []kernel.UUID) ([]*template.Task, error) {
	args := m.Called(ctx, ids)
	t, _ := args.Get(0).([]*template.Task)
	return t, args.Error(1)
}

func (m *MockTemplateRepository) SaveTask(ctx context.Context, task *template.Task) error {
	return m.Called(ctx, task).Error(0)
}

func (m *MockTemplateRepository) SaveWorkflow(ctx context.Context, workflow *template.Workflow) error {
	return m.Called(ctx, workflow).Error(0)
}

func (m *MockTemplateRepository) IsWorkflowInstantiated(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUoW serves every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TemplateRepository() ports.TemplateRepository {
	return m.Called().Get(0).(ports.TemplateRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockTemplateUoWFactory struct{ mock.Mock }

func (m *MockTemplateUoWFactory) Create() commands.TemplateUoW {
	return m.Called().Get(0).(commands.TemplateUoW)
}

// graph is an order built from one template workflow with the given task durations.
type graph struct {
	order    *order.Order
	workflow *template.Workflow
	tasks    []*template.Task
}

func newGraph(t *testing.T, durations ...int) graph {
	t.Helper()

	tasks := make([]*template.Task, 0, len(durations))
	ids := make([]kernel.UUID, 0, len(durations))
	for _, d := range durations {
		task, err := template.NewTask(kernel.NewUUID(), "Task", "", d)
		require.NoError(t, err)
		tasks = append(tasks, task)
		ids = append(ids, task.ID())
	}
	workflow, err := template.NewWorkflow(kernel.NewUUID(), "Inspection", "", ids)
	require.NoError(t, err)

	o, err := services.NewWorkflowInstantiator().Instantiate(
		kernel.NewUUID(), kernel.NewUUID(), []kernel.UUID{workflow.ID()},
		[]*template.Workflow{workflow}, tasks, time.Now().UTC(),
	)
	require.NoError(t, err)

	return graph{order: o, workflow: workflow, tasks: tasks}
}

func (g graph) instance() *order.WorkflowInstance {
	return g.order.WorkflowInstances()[0]
}

func (g graph) ordered(t *testing.T) []*order.TaskInstance {
	t.Helper()
	tis, err := g.instance().OrderedTaskInstances(g.workflow)
	require.NoError(t, err)
	return tis
}
