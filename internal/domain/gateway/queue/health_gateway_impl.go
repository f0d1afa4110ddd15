package queue

import (
	"context"

	"go-weather/internal/domain/model"
)

// QueueHealthGateway reports the event queue as UP when its URL resolves.
type QueueHealthGateway struct {
	resolver  QueueResolver
	queueName string
}

// NewQueueHealthGateway returns a gateway that reports DISABLED when resolver is nil.
func NewQueueHealthGateway(resolver QueueResolver, queueName string) *QueueHealthGateway {
	return &QueueHealthGateway{
		resolver:  resolver,
		queueName: queueName,
	}
}

func (gateway *QueueHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.resolver == nil {
		return model.ComponentHealthStatus{Status: model.StatusDisabled}
	}

	if _, err := gateway.resolver.QueueURL(ctx, gateway.queueName); err != nil {
		return model.ComponentHealthStatus{Status: model.StatusDown, Message: err.Error()}
	}

	return model.ComponentHealthStatus{Status: model.StatusUp, Message: gateway.queueName}
}
