package redis

import (
	"context"
	"time"
)

// HealthStatus represents the health status
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// HealthCheck is the result of a ping with its round trip time.
type HealthCheck struct {
	Status  HealthStatus
	Latency time.Duration
	Error   string
}

// Check pings the server within timeout.
func (c *Client) Check(ctx context.Context, timeout time.Duration) HealthCheck {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	if err := c.Ping(ctx); err != nil {
		return HealthCheck{Status: StatusDown, Latency: time.Since(start), Error: err.Error()}
	}
	return HealthCheck{Status: StatusUp, Latency: time.Since(start)}
}
