// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the marketplace needs.
//
// # Available Jobs
//
// 1. PendingOrderExpiryJob - Runs hourly to cancel pending orders the seller
// never responded to, restoring reserved inventory to the listing.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expirePendingOrdersHandler, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Expiry job logs failures and retries on the next tick
// - Failed job starts will stop any already running jobs
package jobs
