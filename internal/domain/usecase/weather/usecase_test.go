package weather

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/model/external"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeatherGateway struct {
	mu        sync.Mutex
	calls     []string
	responses map[string]string
}

func (g *fakeWeatherGateway) GetCurrentWeather(_ context.Context, cityName string) (*external.CurrentWeatherResponse, error) {
	g.mu.Lock()
	g.calls = append(g.calls, cityName)
	g.mu.Unlock()

	body, ok := g.responses[cityName]
	if !ok {
		return nil, &api.UpstreamError{StatusCode: 404, Message: "city not found"}
	}

	var response external.CurrentWeatherResponse
	if err := json.Unmarshal([]byte(body), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

type mapCache struct {
	entries map[string][]byte
	getErr  error
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	data, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *mapCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

type staticCities struct {
	cities []entity.City
	err    error
}

func (s staticCities) FindAll(context.Context) ([]entity.City, error) { return s.cities, s.err }
func (s staticCities) Create(context.Context, string) (*entity.City, error) {
	return nil, errors.New("read only")
}
func (s staticCities) UpdateByID(context.Context, string, string) (*entity.City, error) {
	return nil, errors.New("read only")
}
func (s staticCities) DeleteByID(context.Context, string) error { return errors.New("read only") }
func (s staticCities) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusUp}
}

const parisBody = `{
	"name": "Paris",
	"sys": {"country": "FR"},
	"main": {"temp": 18.5, "feels_like": 17.9, "humidity": 60},
	"weather": [{"main": "Clouds", "description": "broken clouds"}, {"description": "mist"}],
	"wind": {"speed": 4.1}
}`

func TestGetWeatherMapsProviderResponse(t *testing.T) {
	t.Parallel()

	gateway := &fakeWeatherGateway{responses: map[string]string{"Paris": parisBody}}
	uc := NewWeatherUseCase(gateway, staticCities{}, nil)

	weather, err := uc.GetWeather(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, &entity.Weather{
		Country:     "FR",
		City:        "Paris",
		Temperature: "18.5",
		FeelsLike:   "17.9",
		Description: "broken clouds",
		Humidity:    "60",
		WindSpeed:   "4.1",
	}, weather)
}

func TestGetWeatherFallsBackToRequestedName(t *testing.T) {
	t.Parallel()

	gateway := &fakeWeatherGateway{responses: map[string]string{"Nowhere": `{"main": {"temp": 1}}`}}
	uc := NewWeatherUseCase(gateway, staticCities{}, nil)

	weather, err := uc.GetWeather(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, "Nowhere", weather.City)
	assert.Equal(t, "1", weather.Temperature)
	assert.Empty(t, weather.Description)
	assert.Empty(t, weather.Country)
}

func TestGetWeatherUsesCache(t *testing.T) {
	t.Parallel()

	gateway := &fakeWeatherGateway{responses: map[string]string{"Paris": parisBody, "paris": parisBody}}
	weatherCache := newMapCache()
	uc := NewWeatherUseCase(gateway, staticCities{}, weatherCache)

	first, err := uc.GetWeather(context.Background(), "Paris")
	require.NoError(t, err)
	second, err := uc.GetWeather(context.Background(), "paris")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Paris"}, gateway.calls)
	assert.Contains(t, weatherCache.entries, "paris")
}

func TestGetWeatherIgnoresCacheReadErrors(t *testing.T) {
	t.Parallel()

	gateway := &fakeWeatherGateway{responses: map[string]string{"Paris": parisBody}}
	weatherCache := newMapCache()
	weatherCache.getErr = errors.New("connection refused")
	uc := NewWeatherUseCase(gateway, staticCities{}, weatherCache)

	weather, err := uc.GetWeather(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, "Paris", weather.City)
}

func TestGetWeatherPropagatesUpstreamError(t *testing.T) {
	t.Parallel()

	uc := NewWeatherUseCase(&fakeWeatherGateway{}, staticCities{}, newMapCache())

	_, err := uc.GetWeather(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrUpstream)

	var upstream *api.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 404, upstream.StatusCode)
}

func TestWarmUpRefreshesSavedCities(t *testing.T) {
	t.Parallel()

	gateway := &fakeWeatherGateway{responses: map[string]string{"Paris": parisBody, "Oslo": `{"name": "Oslo"}`}}
	weatherCache := newMapCache()
	cities := staticCities{cities: []entity.City{{ID: "1", Name: "Paris"}, {ID: "2", Name: "Atlantis"}, {ID: "3", Name: "Oslo"}}}
	uc := NewWeatherUseCase(gateway, cities, weatherCache)

	refreshed, err := uc.WarmUp(context.Background(), "req-1")
	require.NoError(t, err)

	assert.Equal(t, 2, refreshed)
	assert.Equal(t, []string{"Paris", "Atlantis", "Oslo"}, gateway.calls)
	assert.Contains(t, weatherCache.entries, "paris")
	assert.Contains(t, weatherCache.entries, "oslo")
	assert.NotContains(t, weatherCache.entries, "atlantis")
}

func TestWarmUpFailsWhenStoreFails(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("store down")
	uc := NewWeatherUseCase(&fakeWeatherGateway{}, staticCities{err: storeErr}, nil)

	_, err := uc.WarmUp(context.Background(), "req-2")
	assert.ErrorIs(t, err, storeErr)
}
