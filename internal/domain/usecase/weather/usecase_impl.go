package weather

import (
	"context"
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/cache"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model/external"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"go.uber.org/zap"
)

type weatherUseCase struct {
	apiGateway   api.WeatherGateway
	dbGateway    db.CityGateway
	weatherCache cache.WeatherCache
}

// NewWeatherUseCase creates the weather use case. weatherCache may be nil, in which case every
// lookup goes to the provider.
func NewWeatherUseCase(apiGateway api.WeatherGateway, dbGateway db.CityGateway, weatherCache cache.WeatherCache) UseCase {
	return &weatherUseCase{
		apiGateway:   apiGateway,
		dbGateway:    dbGateway,
		weatherCache: weatherCache,
	}
}

func (uc *weatherUseCase) GetWeather(ctx context.Context, cityName string) (*entity.Weather, error) {
	key := cacheKey(cityName)

	if uc.weatherCache != nil {
		var cached entity.Weather
		found, err := uc.weatherCache.Get(ctx, key, &cached)
		if err != nil {
			log.Warn("weather cache read failed", zap.String("key", key), zap.Error(err))
		}
		if found {
			log.Debug(msg.GetMessage("weather.cache.hit", cityName))
			return &cached, nil
		}
	}

	return uc.fetch(ctx, cityName)
}

func (uc *weatherUseCase) WarmUp(ctx context.Context, requestID string) (int, error) {
	cities, err := uc.dbGateway.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list cities for warm-up: %w", err)
	}

	refreshed := 0
	for _, city := range cities {
		if ctx.Err() != nil {
			return refreshed, ctx.Err()
		}

		if _, err := uc.fetch(ctx, city.Name); err != nil {
			log.Warn(msg.GetMessage("weather.cron.city-failed", city.Name),
				zap.String("request_id", requestID),
				zap.String("city_id", city.ID),
				zap.Error(err))
			continue
		}
		refreshed++
	}

	return refreshed, nil
}

// fetch always calls the provider and stores the result in the cache.
func (uc *weatherUseCase) fetch(ctx context.Context, cityName string) (*entity.Weather, error) {
	response, err := uc.apiGateway.GetCurrentWeather(ctx, cityName)
	if err != nil {
		return nil, err
	}

	weather := toWeather(response, cityName)

	if uc.weatherCache != nil {
		if err := uc.weatherCache.Set(ctx, cacheKey(cityName), weather); err != nil {
			log.Warn(msg.GetMessage("weather.cache.store-failed", cityName), zap.Error(err))
		}
	}

	return &weather, nil
}

func toWeather(response *external.CurrentWeatherResponse, requested string) entity.Weather {
	weather := entity.Weather{
		Country:     response.Sys.Country,
		City:        response.Name,
		Temperature: response.Main.Temp.String(),
		FeelsLike:   response.Main.FeelsLike.String(),
		Humidity:    response.Main.Humidity.String(),
		WindSpeed:   response.Wind.Speed.String(),
	}
	if weather.City == "" {
		weather.City = requested
	}
	if len(response.Weather) > 0 {
		weather.Description = response.Weather[0].Description
	}
	return weather
}

func cacheKey(cityName string) string {
	return strings.ToLower(strings.TrimSpace(cityName))
}
