package cmd

import (
	"log/slog"

	"workshop/api"
	httpadapter "workshop/internal/adapters/in/http"
	"workshop/internal/adapters/out/metrics"
	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateStartWorkflowInstanceCommandHandler() commands.StartWorkflowInstanceCommandHandler {
	return commands.NewStartWorkflowInstanceCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateUpdateTaskInstanceCommandHandler() commands.UpdateTaskInstanceCommandHandler {
	return commands.NewUpdateTaskInstanceCommandHandler(c.uowFactoryFunc())
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactoryFunc())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactoryFunc())
}

func (c *CompositionRoot) CreateImportTemplatesCommandHandler() commands.ImportTemplatesCommandHandler {
	var f commands.TemplateUoWFactory = FuncTemplateUoWFactory(func() commands.TemplateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewImportTemplatesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderedTaskInstancesQueryHandler() queries.GetOrderedTaskInstancesQueryHandler {
	return queries.NewGetOrderedTaskInstancesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersSummaryQueryHandler() queries.GetOrdersSummaryQueryHandler {
	return queries.NewGetOrdersSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		ApproveOrder:            c.CreateApproveOrderCommandHandler(),
		DeleteOrder:             c.CreateDeleteOrderCommandHandler(),
		StartWorkflowInstance:   c.CreateStartWorkflowInstanceCommandHandler(),
		UpdateTaskInstance:      c.CreateUpdateTaskInstanceCommandHandler(),
		GetOrders:               c.CreateGetOrdersQueryHandler(),
		GetOrderDetail:          c.CreateGetOrderDetailQueryHandler(),
		GetOrderedTaskInstances: c.CreateGetOrderedTaskInstancesQueryHandler(),
	})
}

// CreateRegistry returns a registry with the Go runtime, process and order collectors.
func (c *CompositionRoot) CreateRegistry() (*prometheus.Registry, *metrics.OrderMetrics, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	orderMetrics, err := metrics.NewOrderMetrics(registry)
	if err != nil {
		return nil, nil, err
	}
	return registry, orderMetrics, nil
}

func (c *CompositionRoot) CreateRouter(registry *prometheus.Registry) (*echo.Echo, error) {
	doc, err := api.Load()
	if err != nil {
		return nil, err
	}
	return httpadapter.NewRouter(c.CreateServer(), doc, registry, c.logger.With("component", "http"))
}

func (c *CompositionRoot) CreateJobManager(recorder jobs.StatusRecorder) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOrdersSummaryQueryHandler(),
		recorder,
		c.config.StatusReportSchedule,
		c.logger,
	)
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactoryFunc() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncTemplateUoWFactory func() commands.TemplateUoW

func (f FuncTemplateUoWFactory) Create() commands.TemplateUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
