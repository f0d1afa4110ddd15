package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-weather/configs"
	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/usecase/city"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/infra/aws"
	"go-weather/internal/infra/database/gorm"
	"go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

func main() {
	log.Info(msg.GetMessage("app.start"))

	if err := resource.InitDefault(); err != nil {
		log.Fatal("Fail to load application properties", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	group := e.Group(strings.TrimSuffix(resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath), "/"))

	cityGateway := newCityGateway()
	redisClient := newRedisClient()
	queueSender, queueResolver := newQueueSender(ctx)
	eventsQueue := resource.GetString("app.cloud.sqs.city-events-queue")

	var weatherCache cache.WeatherCache
	if redisClient != nil {
		weatherCache = redis.NewCache(redisClient, redis.NewCacheOptions(weather.CacheName))
	}

	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetStringOrDefault("app.weather.api-key", configs.Env.OpenWeatherAPIKey),
		resource.GetString("app.weather.units"),
		http.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.read-timeout"),
			Logger:      http.NewZapLogger(log.Zap()),
		},
	)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(
		cityGateway,
		cache.NewRedisHealthGateway(redisClient),
		queue.NewQueueHealthGateway(queueResolver, eventsQueue),
	)
	cityUseCase := city.NewCityUseCase(eventsQueue, queueSender, cityGateway)
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, cityGateway, weatherCache)

	// Init Controller
	controller.NewHealthController(group, healthUseCase).InitHealthRoutes()
	controller.NewCityController(group, cityUseCase).InitCityRoutes()
	controller.NewWeatherController(group, weatherUseCase).InitWeatherRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if redisClient != nil {
		lockTTL := resource.GetDuration("app.weather.warmup.lock-ttl")
		scheduler := schedule.NewWeatherScheduler(
			weatherUseCase,
			schedule.RedisTaskLocker(redisClient, configs.Env.ApplicationName, lockTTL),
			resource.GetString("app.weather.warmup.cron"),
			lockTTL,
		)
		if err := scheduler.InitWeatherScheduleTasks(ctx); err != nil {
			log.Fatal("Fail to schedule weather cache warm-up", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatal("Fail to start server", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shutdown server", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Info(msg.GetMessage("app.stopped"))
}

func newCityGateway() db.CityGateway {
	switch driver := resource.GetString("app.store.driver"); driver {
	case "postgres":
		conn, err := gorm.Open(gorm.DSN())
		if err != nil {
			log.Fatal("Fail to connect database", zap.Error(err))
		}
		gateway, err := db.NewGormCityGateway(conn)
		if err != nil {
			log.Fatal("Fail to migrate cities table", zap.Error(err))
		}
		return gateway
	case "xml", "":
		return db.NewXMLFileCityGateway(resource.GetString("app.store.xml-file"))
	default:
		log.Fatalf("Unknown store driver: %s", driver)
		return nil
	}
}

func newRedisClient() *redis.Client {
	if !resource.GetBool("app.redis.enabled") {
		return nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(weather.CacheName, resource.GetDuration("app.redis.weather-ttl"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Fatal("Fail to configure redis", zap.Error(err))
	}
	return client
}

// newQueueSender returns a no-op sender and a nil resolver when SQS is disabled.
func newQueueSender(ctx context.Context) (queue.Sender, queue.QueueResolver) {
	if !resource.GetBool("app.cloud.sqs.enabled") {
		return queue.NopSender{}, nil
	}

	cfg, err := aws.NewConfig(ctx)
	if err != nil {
		log.Fatal("Fail to configure AWS", zap.Error(err))
	}
	adapter := aws.NewSQSSenderAdapter(aws.NewSqsClient(cfg))
	return adapter, adapter
}
