package api

import (
	"context"
	"errors"
	"fmt"

	"go-weather/internal/domain/model/external"
)

// ErrUpstream matches every failed call to the weather provider.
var ErrUpstream = errors.New("weather provider error")

// UpstreamError carries the provider's HTTP status. StatusCode is zero when the provider could not be reached.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("weather provider unavailable: %v", e.Err)
	}
	return fmt.Sprintf("weather provider returned %d: %s", e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}

// WeatherGateway defines the interface for weather-related external API calls
type WeatherGateway interface {
	// GetCurrentWeather gets the current weather for a city name, in metric units
	GetCurrentWeather(ctx context.Context, cityName string) (*external.CurrentWeatherResponse, error)
}
