package queue

import (
	"context"

	"go-weather/internal/domain/model"
)

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}

// QueueResolver resolves a queue name to its URL.
type QueueResolver interface {
	QueueURL(ctx context.Context, queueName string) (string, error)
}
