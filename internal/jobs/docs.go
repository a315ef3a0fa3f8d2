// Package jobs provides scheduled background tasks for the inventory system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the unit lifecycle.
//
// # Available Jobs
//
// 1. OverdueTransferJob - Runs every minute to flag in-transit transfers past their ETA
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getTransfersHandler, logger)
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
// The overdue transfer job is read-only; it logs overdue transfers and never
// mutates state, so a failed scan only costs one observation cycle.
package jobs
