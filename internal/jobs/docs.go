// Package jobs provides scheduled background tasks for the workshop service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(summaryHandler, metrics, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// OrderStatusReportJob counts orders per status, logs the counts and sets the
// workshop_orders gauge. The schedule accepts six-field cron expressions and
// descriptors such as "@every 30s".
package jobs
