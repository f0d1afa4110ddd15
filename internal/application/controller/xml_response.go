package controller

import (
	"go-weather/internal/domain/model"

	"github.com/labstack/echo/v4"
)

const xmlIndent = "  "

func xmlResponse(c echo.Context, status int, payload any) error {
	return c.XMLPretty(status, payload, xmlIndent)
}

func xmlError(c echo.Context, status int, message string) error {
	return xmlResponse(c, status, model.ErrorXML{Message: message})
}
