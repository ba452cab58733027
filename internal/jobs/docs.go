// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// There is one job: ReclamationJob, which periodically sweeps abandoned
// unpaid orders and returns their resources to the pool.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(reclaimHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The job ticks every minute. The sweep handler re-reads the configured
// reclamation schedule on each tick and derives the grace period from it,
// so a schedule-configuration change takes effect on the next tick without
// restarting the job.
package jobs
