package db

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
)

// ErrNotFound is returned when no saved city has the requested id.
var ErrNotFound = errors.New("city not found")

// CityGateway stores the saved-city list. FindAll returns cities in store order.
type CityGateway interface {
	FindAll(ctx context.Context) ([]entity.City, error)
	Create(ctx context.Context, name string) (*entity.City, error)
	UpdateByID(ctx context.Context, id string, name string) (*entity.City, error)
	DeleteByID(ctx context.Context, id string) error

	HealthDBGateway
}
