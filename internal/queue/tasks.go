package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeBlockchainEvents = "blockchain:events"

// EventsPayload is the task body for a batch of chain events received on
// the webhook.
type EventsPayload struct {
	Network string            `json:"network"`
	Logs    []json.RawMessage `json:"logs"`
}

// NewBlockchainEventsTask wraps an event batch into an asynq task.
func NewBlockchainEventsTask(payload EventsPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal events payload: %w", err)
	}
	return asynq.NewTask(TypeBlockchainEvents, body), nil
}

// EventsHandler processes queued chain event batches.
type EventsHandler struct {
	logs *zap.SugaredLogger
}

func NewEventsHandler(logger *zap.SugaredLogger) *EventsHandler {
	return &EventsHandler{
		logs: logger,
	}
}

// HandleBlockchainEvents logs each event in the batch. A payload that does
// not decode is dropped rather than retried, the producer already
// validated it.
func (h *EventsHandler) HandleBlockchainEvents(ctx context.Context, task *asynq.Task) error {
	var payload EventsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		h.logs.Errorw("failed to decode events payload", "error", err)
		return fmt.Errorf("decode events payload: %v: %w", err, asynq.SkipRetry)
	}

	for _, event := range payload.Logs {
		h.logs.Infow("blockchain event received", "network", payload.Network, "event", string(event))
	}

	return nil
}
