package city

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type cityUseCase struct {
	queueName   string
	dbGateway   db.CityGateway
	queueSender queue.Sender
	now         func() time.Time
}

func NewCityUseCase(queueName string, queueSender queue.Sender, dbGateway db.CityGateway) UseCase {
	if queueSender == nil {
		queueSender = queue.NopSender{}
	}

	return &cityUseCase{
		queueName:   queueName,
		dbGateway:   dbGateway,
		queueSender: queueSender,
		now:         time.Now,
	}
}

func (uc *cityUseCase) FindAll(ctx context.Context) ([]entity.City, error) {
	cities, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

func (uc *cityUseCase) Create(ctx context.Context, name string) (*entity.City, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	city, err := uc.dbGateway.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to save city: %w", err)
	}

	uc.publish(ctx, entity.CityCreated, *city)
	return city, nil
}

func (uc *cityUseCase) Update(ctx context.Context, id string, name string) (*entity.City, error) {
	name, err := validName(name)
	if err != nil {
		return nil, err
	}

	city, err := uc.dbGateway.UpdateByID(ctx, id, name)
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %s", ErrCityNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update city %s: %w", id, err)
	}

	uc.publish(ctx, entity.CityUpdated, *city)
	return city, nil
}

func (uc *cityUseCase) Delete(ctx context.Context, id string) error {
	err := uc.dbGateway.DeleteByID(ctx, id)
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("%w: id %s", ErrCityNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete city %s: %w", id, err)
	}

	uc.publish(ctx, entity.CityDeleted, entity.City{ID: id})
	return nil
}

// publish never fails the mutation that triggered it.
func (uc *cityUseCase) publish(ctx context.Context, eventType entity.CityEventType, city entity.City) {
	event := entity.CityEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		CityID:     city.ID,
		Name:       city.Name,
		OccurredAt: uc.now().UTC().Format(time.RFC3339),
	}

	err := uc.queueSender.SendMessage(ctx, uc.queueName, event, map[string]string{"eventType": string(eventType)})
	if err != nil {
		log.Warn(msg.GetMessage("city.error.event-failed", string(eventType), city.ID),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidPayload, msg.GetMessage("city.error.missing-name"))
	}
	return name, nil
}
