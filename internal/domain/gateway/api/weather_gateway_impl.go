package api

import (
	"context"

	"go-weather/internal/domain/model/external"
	"go-weather/pkg/http"
)

// weatherGatewayImpl implements the WeatherGateway interface against OpenWeather
type weatherGatewayImpl struct {
	httpClient *http.Client
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client
func NewWeatherGateway(baseUrl string, apiKey string, units string, clientOptions http.ClientOptions) WeatherGateway {
	clientOptions.DefaultContentType = http.MIMEApplicationJSON
	clientOptions.DefaultAccept = http.MIMEApplicationJSON
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	if units == "" {
		units = "metric"
	}

	return &weatherGatewayImpl{
		httpClient: httpClient,
		apiKey:     apiKey,
		units:      units,
	}
}

// GetCurrentWeather gets the current weather for a city name
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, cityName string) (*external.CurrentWeatherResponse, error) {
	resp, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/data/2.5/weather").
		WithQueryParams(map[string]string{
			"q":     cityName,
			"appid": w.apiKey,
			"units": w.units,
		}).
		Execute(ctx)
	if err != nil {
		return nil, &UpstreamError{Err: err}
	}

	if resp.StatusCode != 200 {
		var errorResponse external.APIErrorResponse
		if decodeErr := resp.Decode(&errorResponse); decodeErr != nil {
			errorResponse.Message = resp.Text()
		}
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: errorResponse.Message}
	}

	var response external.CurrentWeatherResponse
	if err := resp.Decode(&response); err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Message: "invalid response body", Err: err}
	}

	return &response, nil
}
