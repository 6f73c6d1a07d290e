// Package jobs provides scheduled background tasks for the food service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds field, so schedules
// have six fields.
//
// # Available Jobs
//
// SessionDigestJob counts today's orders in the database and logs,
// for each session, how many orders are still waiting on the kitchen, how many are
// not yet delivered and how many have no delivery person. The default schedule is
// the top of every hour.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(digestQueryHandler, cfg.DigestSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - An invalid schedule fails StartAll and stops jobs that already started
//   - A failed digest run is logged and retried on the next tick
package jobs
