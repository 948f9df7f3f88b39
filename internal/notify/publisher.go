// Package notify publishes workflow events to Redis for downstream
// consumers (dashboards, the websocket gateway). Delivery is
// fire-and-forget: a publish failure is logged and never fails or rolls
// back the workflow operation that produced the event.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Channel is the Redis pub/sub channel all workflow events go to.
const Channel = "newsdesk:events"

const publishTimeout = 2 * time.Second

// Event kinds emitted by the task workflow.
const (
	EventTaskAssigned      = "task.assigned"
	EventTaskStatusChanged = "task.status_changed"
	EventTaskSubmitted     = "task.submitted"
	EventTaskReviewed      = "task.reviewed"
)

// Event is the payload published for one workflow transition.
type Event struct {
	Kind       string    `json:"kind"`
	TaskID     string    `json:"task_id"`
	TaskTitle  string    `json:"task_title"`
	ActorID    string    `json:"actor_id"`
	AssigneeID string    `json:"assignee_id,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher sends events to Redis. A nil client disables publishing.
type Publisher struct {
	client *redis.Client
}

// NewPublisher creates a Publisher. redisURL may be empty to disable
// notifications entirely.
func NewPublisher(redisURL string) (*Publisher, error) {
	if redisURL == "" {
		return &Publisher{}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &Publisher{client: redis.NewClient(opts)}, nil
}

// Publish sends one event. Errors are logged, never returned: callers
// run after their transaction committed and must not fail because a
// notification did.
func (p *Publisher) Publish(ctx context.Context, event Event) {
	if p.client == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		slog.Warn("failed to marshal notification", "kind", event.Kind, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := p.client.Publish(ctx, Channel, payload).Err(); err != nil {
		slog.Warn("failed to publish notification",
			"kind", event.Kind,
			"task_id", event.TaskID,
			"error", err,
		)
	}
}

// Close releases the underlying Redis connection.
func (p *Publisher) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}
