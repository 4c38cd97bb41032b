package queries_test

import (
	"context"
	"testing"

	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetOrderedTaskInstancesQueryHandlerTestSuite struct {
	readModelSuite
	handler queries.GetOrderedTaskInstancesQueryHandler
}

func (suite *GetOrderedTaskInstancesQueryHandlerTestSuite) SetupTest() {
	suite.readModelSuite.SetupTest()
	suite.handler = queries.NewGetOrderedTaskInstancesQueryHandler(suite.pg.DB)
}

func (suite *GetOrderedTaskInstancesQueryHandlerTestSuite) TestHandle_ReturnsTemplateOrder() {
	o := suite.addOrder(now(), "Service")
	wi := suite.instanceOf(o, "Service")

	query, err := queries.NewGetOrderedTaskInstancesQuery(wi.ID())
	suite.Require().NoError(err)

	tasks, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)
	suite.Equal(suite.taskOf(wi, "Oil").ID(), tasks[0].ID)
	suite.Equal(suite.tasks["Oil"].ID(), tasks[0].TaskID)
	suite.Equal(suite.taskOf(wi, "Brakes").ID(), tasks[1].ID)
	suite.Equal(20, tasks[1].Duration)
}

func (suite *GetOrderedTaskInstancesQueryHandlerTestSuite) TestHandle_NonExistentInstance_ReturnsNotFound() {
	query, _ := queries.NewGetOrderedTaskInstancesQuery(kernel.NewUUID())

	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderedTaskInstancesQueryHandlerTestSuite) TestHandle_MissingTaskInstance_ReturnsInvariantError() {
	o := suite.addOrder(now(), "Service")
	wi := suite.instanceOf(o, "Service")
	suite.Require().NoError(
		suite.pg.DB.Exec("DELETE FROM task_instances WHERE id = ?", suite.taskOf(wi, "Oil").ID().Bytes()).Error,
	)

	query, _ := queries.NewGetOrderedTaskInstancesQuery(wi.ID())
	_, err := suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrInvariantIsBroken)
}

func TestGetOrderedTaskInstancesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderedTaskInstancesQueryHandlerTestSuite))
}
