package cache

import (
	"context"
	"time"

	"go-weather/internal/domain/model"
	"go-weather/pkg/redis"
)

// RedisHealthGateway reports DISABLED when no redis client is configured.
type RedisHealthGateway struct {
	client  *redis.Client
	timeout time.Duration
}

func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	return &RedisHealthGateway{client: client, timeout: 2 * time.Second}
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if gateway.client == nil {
		return model.ComponentHealthStatus{Status: model.StatusDisabled}
	}

	check := gateway.client.Check(ctx, gateway.timeout)
	if check.Status != redis.StatusUp {
		return model.ComponentHealthStatus{Status: model.StatusDown, Message: check.Error}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Message: "redis " + check.Latency.Round(time.Millisecond).String()}
}
