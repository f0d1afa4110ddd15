package cache

import (
	"context"

	"go-weather/internal/domain/model"
)

// WeatherCache stores weather lookups by key. Get reports false on a miss.
type WeatherCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
