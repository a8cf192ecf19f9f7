// Package jobs provides scheduled background tasks for QuickCart.
//
// Jobs are built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotJob - saves the catalog and ledger to the configured snapshot store
// on the SNAPSHOT_SCHEDULE cron spec (default "@every 1m"; empty disables it)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(snapshotJob, config.SnapshotSchedule)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed save is logged and retried on the next tick. Failed job starts stop
// any already running jobs.
package jobs
