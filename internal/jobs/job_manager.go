package jobs

import (
	"fmt"
	"log/slog"

	"parcelmatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRedeliveryJob *OutboxRedeliveryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	outbox ports.ConversationOutboxRepository,
	gateway ports.ConversationGateway,
	redeliverySchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		outboxRedeliveryJob: NewOutboxRedeliveryJob(outbox, gateway, redeliverySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRedeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox redelivery job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.outboxRedeliveryJob.Stop()
}
