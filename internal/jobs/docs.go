// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for running the order lifecycle.
//
// # Available Jobs
//
// 1. OrderBoardJob - Runs every minute and logs how many orders sit in each
// lifecycle status across all restaurants
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderBoardHandler, logger)
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
// - Board job logs query failures and keeps its schedule; a missed tick is
// not an outage
// - Failed job starts will stop any already running jobs
package jobs
