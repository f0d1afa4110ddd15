package weather

import (
	"context"

	"go-weather/internal/domain/entity"
)

// CacheName is the redis key space of cached weather lookups.
const CacheName = "weather"

type UseCase interface {
	// GetWeather returns the current weather for a city, from the cache when present
	GetWeather(ctx context.Context, cityName string) (*entity.Weather, error)

	// WarmUp refreshes the cached weather of every saved city and returns how many were refreshed
	WarmUp(ctx context.Context, requestID string) (int, error)
}
