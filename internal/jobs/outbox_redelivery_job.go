package jobs

import (
	"context"
	"log/slog"

	"parcelmatch/internal/core/ports"
	"parcelmatch/internal/metrics"

	"github.com/robfig/cron/v3"
)

// defaultBatchSize caps how many parked events one redelivery tick replays.
const defaultBatchSize = 50

// OutboxRedeliveryJob drains the conversation outbox on a schedule and
// replays parked chat events against the gateway. Events that fail again
// stay pending with an incremented attempt counter and are retried on the
// next tick.
type OutboxRedeliveryJob struct {
	outbox    ports.ConversationOutboxRepository
	gateway   ports.ConversationGateway
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRedeliveryJob creates a redelivery job with the given cron
// schedule (six-field expression, seconds included).
func NewOutboxRedeliveryJob(
	outbox ports.ConversationOutboxRepository,
	gateway ports.ConversationGateway,
	schedule string,
	logger *slog.Logger,
) *OutboxRedeliveryJob {
	return &OutboxRedeliveryJob{
		outbox:    outbox,
		gateway:   gateway,
		schedule:  schedule,
		batchSize: defaultBatchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_redelivery_job"),
	}
}

// Start begins the redelivery job on its configured schedule.
func (j *OutboxRedeliveryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox redelivery job started", "schedule", j.schedule)
	return nil
}

// Stop stops the redelivery job.
func (j *OutboxRedeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox redelivery job stopped")
}

// RunOnce drains one batch of pending events. Exposed so the composition
// root can flush the outbox outside the schedule.
func (j *OutboxRedeliveryJob) RunOnce(ctx context.Context) {
	events, err := j.outbox.GetPending(ctx, j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read pending conversation events", "error", err)
		return
	}

	for _, event := range events {
		if err := j.replay(ctx, event); err != nil {
			j.logger.WarnContext(ctx, "Conversation event redelivery failed",
				"event_id", event.ID.String(), "attempts", event.Attempts+1, "error", err)
			if err := j.outbox.MarkAttempt(ctx, event.ID); err != nil {
				j.logger.ErrorContext(ctx, "Failed to record redelivery attempt",
					"event_id", event.ID.String(), "error", err)
			}
			continue
		}

		if err := j.outbox.MarkDelivered(ctx, event.ID); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark conversation event delivered",
				"event_id", event.ID.String(), "error", err)
			continue
		}
		metrics.ConversationRedeliveredTotal.Inc()
	}
}

func (j *OutboxRedeliveryJob) replay(ctx context.Context, event ports.ConversationEvent) error {
	// A message row without a sender cannot be replayed; retrying will never
	// heal it, so it is skipped and marked delivered.
	if event.Type == ports.ConversationEventMessage && event.SenderID == nil {
		j.logger.WarnContext(ctx, "Skipping message event without sender",
			"event_id", event.ID.String())
		return nil
	}

	conversationID, err := j.gateway.GetOrCreateConversation(ctx, event.ShipmentID, event.UserA, event.UserB)
	if err != nil {
		return err
	}

	switch event.Type {
	case ports.ConversationEventMessage:
		return j.gateway.PostMessage(ctx, conversationID, *event.SenderID, event.Kind, event.Content)
	case ports.ConversationEventStatus:
		return j.gateway.SetConversationStatus(ctx, conversationID, event.Content)
	default:
		j.logger.WarnContext(ctx, "Skipping conversation event of unknown type",
			"event_id", event.ID.String(), "type", event.Type)
		return nil
	}
}
