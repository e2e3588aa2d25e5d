// Package jobs provides scheduled background tasks for the matching engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRedeliveryJob - Drains the conversation outbox on a schedule and
// replays chat events whose immediate delivery failed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, chatGateway, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A redelivery failure keeps the event pending and increments its attempt
// counter; the next tick retries it. Redelivery never blocks or fails the
// engine's primary operations.
package jobs
