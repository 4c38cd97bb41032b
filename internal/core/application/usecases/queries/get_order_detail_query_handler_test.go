package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GetOrderDetailQueryHandlerTestSuite struct {
	readModelSuite
	handler queries.GetOrderDetailQueryHandler
}

func (suite *GetOrderDetailQueryHandlerTestSuite) SetupTest() {
	suite.readModelSuite.SetupTest()
	suite.handler = queries.NewGetOrderDetailQueryHandler(suite.pg.DB)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_GroupsInstancesInTemplateOrder() {
	ctx := context.Background()
	created := now()
	o := suite.addOrder(created, "Service", "Inspection")

	query, err := queries.NewGetOrderDetailQuery(o.ID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), detail.ID)
	suite.Equal(o.CarID(), detail.CarID)
	suite.Equal(o.CustomerID(), detail.CustomerID)
	suite.Equal(order.AwaitingCustomer, detail.Status)
	suite.Equal(60, detail.TotalTime)
	suite.True(created.Equal(detail.CreatedAt))

	suite.Require().Len(detail.WorkflowInstances, 2)
	suite.Equal("Inspection", detail.WorkflowInstances[0].Name)
	suite.Equal("Service", detail.WorkflowInstances[1].Name)

	inspection := detail.WorkflowInstances[0]
	suite.Equal(suite.instanceOf(o, "Inspection").ID(), inspection.ID)
	suite.Equal(order.RunPending, inspection.Status)
	suite.Require().Len(inspection.TaskInstances, 2)
	suite.Equal("Lights", inspection.TaskInstances[0].Name)
	suite.Equal("Lights check", inspection.TaskInstances[0].Description)
	suite.Equal(5, inspection.TaskInstances[0].Duration)
	suite.Equal("Brakes", inspection.TaskInstances[1].Name)

	service := detail.WorkflowInstances[1]
	suite.Equal("Oil", service.TaskInstances[0].Name)
	suite.Equal("Brakes", service.TaskInstances[1].Name)
	suite.NotEqual(inspection.TaskInstances[1].ID, service.TaskInstances[1].ID)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_ReflectsExecutionState() {
	ctx := context.Background()
	at := now()
	o := suite.addOrder(at, "Inspection")
	wi := suite.instanceOf(o, "Inspection")
	workflow := suite.workflows["Inspection"]

	_, err := o.StartWorkflowInstance(wi.ID(), order.RunInProgress, workflow, at)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Approve(at))
	note := "bulb replaced"
	done := at.Add(time.Minute)
	_, err = o.UpdateTaskInstance(suite.taskOf(wi, "Lights").ID(), order.RunCompleted, &note, workflow, done)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Update(ctx, o))

	query, _ := queries.NewGetOrderDetailQuery(o.ID())
	detail, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.InProgress, detail.Status)
	tasks := detail.WorkflowInstances[0].TaskInstances
	suite.Equal(order.RunInProgress, detail.WorkflowInstances[0].Status)

	suite.Equal(order.RunCompleted, tasks[0].Status)
	suite.Require().NotNil(tasks[0].Comments)
	suite.Equal(note, *tasks[0].Comments)
	suite.Require().NotNil(tasks[0].CompletedAt)
	suite.True(done.Equal(*tasks[0].CompletedAt))

	suite.Equal(order.RunInProgress, tasks[1].Status)
	suite.NotNil(tasks[1].StartedAt)
	suite.Nil(tasks[1].CompletedAt)
	suite.Nil(tasks[1].Comments)
}

// afterFirstRead runs write on its own connection once the handler has read
// the order row and before it reads the instances.
func (suite *GetOrderDetailQueryHandlerTestSuite) afterFirstRead(write string, args ...any) {
	const name = "test:write_after_first_read"
	var once sync.Once

	rows := suite.pg.DB.Callback().Row()
	suite.Require().NoError(rows.After("gorm:row").Register(name, func(*gorm.DB) {
		once.Do(func() {
			suite.Require().NoError(suite.pg.DB.Exec(write, args...).Error)
		})
	}))
	suite.T().Cleanup(func() {
		suite.Require().NoError(rows.Remove(name))
	})
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_IgnoresWritesCommittedDuringTheRead() {
	ctx := context.Background()
	o := suite.addOrder(now(), "Inspection")
	wi := suite.instanceOf(o, "Inspection")
	suite.afterFirstRead(`UPDATE workflow_instances SET status = 'COMPLETED' WHERE id = ?`, wi.ID().Bytes())

	query, _ := queries.NewGetOrderDetailQuery(o.ID())
	detail, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(order.AwaitingCustomer, detail.Status)
	suite.Equal(order.RunPending, detail.WorkflowInstances[0].Status)

	detail, err = suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(order.RunCompleted, detail.WorkflowInstances[0].Status)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_OrderDeletedDuringTheRead() {
	ctx := context.Background()
	o := suite.addOrder(now(), "Inspection", "Service")
	suite.afterFirstRead(`DELETE FROM orders WHERE id = ?`, o.ID().Bytes())

	query, _ := queries.NewGetOrderDetailQuery(o.ID())
	detail, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(detail.WorkflowInstances, 2)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFound() {
	query, _ := queries.NewGetOrderDetailQuery(kernel.NewUUID())

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderDetailQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderDetailQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrderDetailQueryIsNotConstructed)
}

func TestGetOrderDetailQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderDetailQueryHandlerTestSuite))
}
