package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Client enqueues background tasks onto the redis-backed queue.
type Client struct {
	logs   *zap.SugaredLogger
	client *asynq.Client
}

func NewClient(logger *zap.SugaredLogger, redisOpt asynq.RedisClientOpt) *Client {
	return &Client{
		logs:   logger,
		client: asynq.NewClient(redisOpt),
	}
}

// EnqueueBlockchainEvents queues an event batch for background processing.
func (c *Client) EnqueueBlockchainEvents(ctx context.Context, payload EventsPayload) error {
	task, err := NewBlockchainEventsTask(payload)
	if err != nil {
		return err
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logs.Errorw("failed to enqueue events task", "error", err)
		return fmt.Errorf("enqueue events task: %w", err)
	}

	c.logs.Infow("events task enqueued", "task_id", info.ID, "queue", info.Queue, "events", len(payload.Logs))
	return nil
}

// Close releases the underlying redis connection.
func (c *Client) Close() error {
	return c.client.Close()
}
