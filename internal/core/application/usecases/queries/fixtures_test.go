package queries_test

import (
	"context"
	"time"

	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/templaterepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/template"
	"workshop/internal/core/domain/services"
	"workshop/internal/testutil"

	"github.com/stretchr/testify/suite"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// readModelSuite seeds a small catalog into a migrated PostgreSQL container:
//
//	Inspection: Lights(5), Brakes(20)
//	Service:    Oil(15), Brakes(20)
type readModelSuite struct {
	suite.Suite
	pg     *testutil.Postgres
	orders *orderrepo.GormOrderRepository

	tasks     map[string]*template.Task
	workflows map[string]*template.Workflow
}

func (suite *readModelSuite) SetupSuite() {
	pg, err := testutil.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *readModelSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *readModelSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.pg.Truncate())
	suite.orders = orderrepo.NewGormOrderRepository(suite.pg.DB, &mockAggregateTracker{})

	repo := templaterepo.NewGormTemplateRepository(suite.pg.DB)
	suite.tasks = make(map[string]*template.Task)
	for name, duration := range map[string]int{"Lights": 5, "Brakes": 20, "Oil": 15} {
		task, err := template.NewTask(kernel.NewUUID(), name, name+" check", duration)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.SaveTask(ctx, task))
		suite.tasks[name] = task
	}

	suite.workflows = make(map[string]*template.Workflow)
	for name, tasks := range map[string][]string{
		"Inspection": {"Lights", "Brakes"},
		"Service":    {"Oil", "Brakes"},
	} {
		ids := make([]kernel.UUID, 0, len(tasks))
		for _, t := range tasks {
			ids = append(ids, suite.tasks[t].ID())
		}
		workflow, err := template.NewWorkflow(kernel.NewUUID(), name, "", ids)
		suite.Require().NoError(err)
		suite.Require().NoError(repo.SaveWorkflow(ctx, workflow))
		suite.workflows[name] = workflow
	}
}

// addOrder instantiates and stores an order for the named workflows.
func (suite *readModelSuite) addOrder(at time.Time, workflows ...string) *order.Order {
	requested := make([]kernel.UUID, 0, len(workflows))
	templates := make([]*template.Workflow, 0, len(workflows))
	for _, name := range workflows {
		requested = append(requested, suite.workflows[name].ID())
		templates = append(templates, suite.workflows[name])
	}

	tasks := make([]*template.Task, 0, len(suite.tasks))
	for _, task := range suite.tasks {
		tasks = append(tasks, task)
	}

	o, err := services.NewWorkflowInstantiator().Instantiate(
		kernel.NewUUID(), kernel.NewUUID(), requested, templates, tasks, at,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

// instanceOf returns the workflow instance created from the named template.
func (suite *readModelSuite) instanceOf(o *order.Order, workflow string) *order.WorkflowInstance {
	for _, wi := range o.WorkflowInstances() {
		if wi.WorkflowID() == suite.workflows[workflow].ID() {
			return wi
		}
	}
	suite.FailNow("no instance of " + workflow)
	return nil
}

// taskOf returns the task instance created from the named task template.
func (suite *readModelSuite) taskOf(wi *order.WorkflowInstance, task string) *order.TaskInstance {
	for _, ti := range wi.TaskInstances() {
		if ti.TaskID() == suite.tasks[task].ID() {
			return ti
		}
	}
	suite.FailNow("no instance of " + task)
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
