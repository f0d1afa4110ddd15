package controller

import (
	"encoding/xml"
	"errors"
	"io"
	"net/http"
	"strings"

	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/city"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const maxPayloadSize = 64 << 10

type CityController struct {
	api     *echo.Group
	useCase city.UseCase
}

func NewCityController(api *echo.Group, useCase city.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes saved-city routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/cities", controller.FindAll)
	controller.api.POST("/cities", controller.Create)
	controller.api.PUT("/cities/:id", controller.Update)
	controller.api.DELETE("/cities/:id", controller.Delete)
}

// FindAll godoc
// @Summary List saved cities
// @Tags cities
// @Produce xml
// @Success 200 {object} model.CitiesXML "Saved cities in store order"
// @Failure 500 {object} model.ErrorXML "Store error"
// @Router /cities [get]
func (controller *CityController) FindAll(c echo.Context) error {
	cities, err := controller.useCase.FindAll(c.Request().Context())
	if err != nil {
		return controller.failure(c, err)
	}
	return xmlResponse(c, http.StatusOK, model.NewCitiesXML(cities))
}

// Create godoc
// @Summary Save a city
// @Tags cities
// @Accept xml
// @Produce xml
// @Param city body model.CityPayload true "City to save"
// @Success 201 {object} model.ResultXML "City added, with its id"
// @Failure 400 {object} model.ErrorXML "Invalid XML payload"
// @Router /cities [post]
func (controller *CityController) Create(c echo.Context) error {
	name, err := readCityName(c)
	if err != nil {
		return controller.failure(c, err)
	}

	created, err := controller.useCase.Create(c.Request().Context(), name)
	if err != nil {
		return controller.failure(c, err)
	}

	return xmlResponse(c, http.StatusCreated, model.ResultXML{Message: msg.GetMessage("city.added"), ID: created.ID})
}

// Update godoc
// @Summary Rename a saved city
// @Tags cities
// @Accept xml
// @Produce xml
// @Param id path string true "City id"
// @Param city body model.CityPayload true "New name"
// @Success 200 {object} model.ResultXML "City updated"
// @Failure 400 {object} model.ErrorXML "Invalid XML payload"
// @Failure 404 {object} model.ErrorXML "City not found"
// @Router /cities/{id} [put]
func (controller *CityController) Update(c echo.Context) error {
	name, err := readCityName(c)
	if err != nil {
		return controller.failure(c, err)
	}

	if _, err := controller.useCase.Update(c.Request().Context(), c.Param("id"), name); err != nil {
		return controller.failure(c, err)
	}

	return xmlResponse(c, http.StatusOK, model.ResultXML{Message: msg.GetMessage("city.updated")})
}

// Delete godoc
// @Summary Delete a saved city
// @Tags cities
// @Produce xml
// @Param id path string true "City id"
// @Success 200 {object} model.ResultXML "City deleted"
// @Failure 404 {object} model.ErrorXML "City not found"
// @Router /cities/{id} [delete]
func (controller *CityController) Delete(c echo.Context) error {
	if err := controller.useCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return controller.failure(c, err)
	}

	return xmlResponse(c, http.StatusOK, model.ResultXML{Message: msg.GetMessage("city.deleted")})
}

type payloadError struct {
	reason string
}

func (e *payloadError) Error() string {
	return e.reason
}

// readCityName decodes <city><name>..</name></city>. Any decoding failure or a blank name is a payloadError.
func readCityName(c echo.Context) (string, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPayloadSize))
	if err != nil {
		return "", &payloadError{reason: err.Error()}
	}

	var payload model.CityPayload
	if err := xml.Unmarshal(body, &payload); err != nil {
		return "", &payloadError{reason: err.Error()}
	}

	if strings.TrimSpace(payload.Name) == "" {
		return "", &payloadError{reason: msg.GetMessage("city.error.missing-name")}
	}

	return payload.Name, nil
}

func (controller *CityController) failure(c echo.Context, err error) error {
	var invalid *payloadError

	switch {
	case errors.As(err, &invalid):
		return xmlError(c, http.StatusBadRequest, msg.GetMessage("city.error.invalid-payload", invalid.reason))
	case errors.Is(err, city.ErrInvalidPayload):
		return xmlError(c, http.StatusBadRequest, msg.GetMessage("city.error.invalid-payload", msg.GetMessage("city.error.missing-name")))
	case errors.Is(err, city.ErrCityNotFound):
		return xmlError(c, http.StatusNotFound, msg.GetMessage("city.error.not-found"))
	default:
		log.Error("city request failed", zap.String("path", c.Path()), zap.Error(err))
		return xmlError(c, http.StatusInternalServerError, err.Error())
	}
}
