package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrdersSummaryHandler counts orders per status.
type OrdersSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetOrdersSummaryQuery) ([]queries.GetOrdersSummaryQueryResponse, error)
}

// StatusRecorder publishes the number of orders in a status.
type StatusRecorder interface {
	SetOrderCount(status string, count int)
}

// OrderStatusReportJob periodically logs how many orders are in each status
// and publishes the counts to the recorder.
type OrderStatusReportJob struct {
	handler  OrdersSummaryHandler
	recorder StatusRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusReportJob creates the report job. schedule is a cron
// expression with seconds or a descriptor such as "@every 1m".
func NewOrderStatusReportJob(
	handler OrdersSummaryHandler,
	recorder StatusRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatusReportJob {
	return &OrderStatusReportJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_report_job"),
	}
}

// Start schedules the report.
func (j *OrderStatusReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *OrderStatusReportJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetOrdersSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status report job failed", "error", err)
		return
	}

	attrs := make([]any, 0, len(summary)*2)
	for _, s := range summary {
		j.recorder.SetOrderCount(s.Status.String(), s.Count)
		attrs = append(attrs, s.Status.String(), s.Count)
	}
	j.logger.InfoContext(ctx, "Orders by status", attrs...)
}

// Stop waits for a running report and stops the schedule.
func (j *OrderStatusReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status report job stopped")
}
