package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const warmUpLockKey = "weather_cache_warmup"

// TaskLocker runs fn while holding the lock named key.
type TaskLocker func(ctx context.Context, key string, fn func() error) error

// RedisTaskLocker holds a redis lock with the given TTL for the duration of each run.
func RedisTaskLocker(client *redis.Client, namespace string, ttl time.Duration) TaskLocker {
	return func(ctx context.Context, key string, fn func() error) error {
		opts := redis.NewLockOptions().WithTTL(ttl).WithLockNamespace(namespace)
		return redis.LockWithFunc(ctx, client, key, opts, fn)
	}
}

// WeatherScheduler refreshes the weather cache of the saved cities on a cron schedule.
// Only one instance runs a given tick: the others fail to take the lock and skip it.
type WeatherScheduler struct {
	cron           *cron.Cron
	useCase        weather.UseCase
	locker         TaskLocker
	cronExpression string
	timeout        time.Duration
	ctx            context.Context
}

func NewWeatherScheduler(useCase weather.UseCase, locker TaskLocker, cronExpression string, timeout time.Duration) *WeatherScheduler {
	return &WeatherScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		locker:         locker,
		cronExpression: cronExpression,
		timeout:        timeout,
		ctx:            context.Background(),
	}
}

// InitWeatherScheduleTasks registers the warm-up job and starts the cron. Runs stop when ctx is done.
func (s *WeatherScheduler) InitWeatherScheduleTasks(ctx context.Context) error {
	s.ctx = ctx

	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid warm-up cron expression %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Weather cache warm-up scheduled with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledTask runs one warm-up under the lock
func (s *WeatherScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	err := s.locker(ctx, warmUpLockKey, func() error {
		log.Info(msg.GetMessage("weather.cron.start"), zap.String("request_id", requestID))

		refreshed, err := s.useCase.WarmUp(ctx, requestID)
		if err != nil {
			return err
		}

		log.Info(msg.GetMessage("weather.cron.end", refreshed), zap.String("request_id", requestID))
		return nil
	})

	switch {
	case errors.Is(err, redis.ErrLockNotAcquired):
		log.Debug("Weather cache warm-up skipped, lock held elsewhere", zap.String("request_id", requestID))
	case err != nil:
		log.Error("Weather cache warm-up failed", zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop waits for a running job and stops the scheduler
func (s *WeatherScheduler) Stop() {
	<-s.cron.Stop().Done()
}
