// Package jobs provides scheduled background tasks for the POS service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// SalesSnapshotJob summarizes the orders each configured business created since
// midnight (UTC), logs the figures and publishes a SalesSnapshot event.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(salesSummaryHandler, publisher, businesses, "0 0 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A snapshot that fails for one business is logged and does not prevent the
// snapshots of the other businesses. An invalid schedule fails StartAll.
package jobs
