// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreStatisticsJob - Logs customer, product, order and item counts, the
// total ordered weight and the latest order number. Read-only.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(statisticsHandler, config.StatsSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from STATS_SCHEDULE. It accepts cron specs with an
// optional leading seconds field ("*/30 * * * * *") and descriptors
// ("@every 1m", "@hourly"). The default is "@every 1m".
//
// # Error Handling
//
// A failed run is logged and the next run proceeds normally. An invalid
// schedule fails StartAll.
package jobs
