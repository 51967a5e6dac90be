// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. KeepaliveJob - Sends a keepalive comment to every open kitchen and waiter stream
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(broadcaster, config.StreamKeepaliveSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. The keepalive defaults to
// "*/15 * * * * *". A stream whose keepalive cannot be delivered is dropped from
// the registry.
package jobs
