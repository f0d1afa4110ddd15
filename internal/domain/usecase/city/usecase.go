package city

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
)

var (
	// ErrCityNotFound is returned when no saved city has the requested id
	ErrCityNotFound = errors.New("city not found")
	// ErrInvalidPayload is returned when a city name is missing
	ErrInvalidPayload = errors.New("invalid city payload")
)

type UseCase interface {
	// FindAll returns the saved cities in store order
	FindAll(ctx context.Context) ([]entity.City, error)

	// Create saves a new city and returns it with its assigned id
	Create(ctx context.Context, name string) (*entity.City, error)

	// Update renames the city with the given id
	Update(ctx context.Context, id string, name string) (*entity.City, error)

	// Delete removes the city with the given id
	Delete(ctx context.Context, id string) error
}
