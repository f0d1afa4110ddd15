package controller

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather/:city", controller.GetWeather)
}

// GetWeather godoc
// @Summary Get current weather
// @Description Look up the current weather of a city at OpenWeather, in metric units
// @Tags weather
// @Produce xml
// @Param city path string true "City name"
// @Success 200 {object} model.WeatherXML "Current weather"
// @Failure 502 {object} model.ErrorXML "Weather provider error"
// @Router /weather/{city} [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	city := pathParam(c, "city")

	result, err := controller.useCase.GetWeather(c.Request().Context(), city)
	if err != nil {
		var upstream *api.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode != 0 {
			return xmlError(c, http.StatusBadGateway, msg.GetMessage("weather.error.upstream", strconv.Itoa(upstream.StatusCode)))
		}

		log.Error("weather lookup failed", zap.String("city", city), zap.Error(err))
		return xmlError(c, http.StatusBadGateway, msg.GetMessage("weather.error.unavailable"))
	}

	return xmlResponse(c, http.StatusOK, model.NewWeatherXML(*result))
}

// pathParam returns the decoded path parameter. When the request carries a raw path (an escaped
// slash, for one) echo routes on it and hands back the still-escaped segment.
func pathParam(c echo.Context, name string) string {
	value := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}
