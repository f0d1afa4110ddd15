// Package docs holds the Swagger description of the weather API served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cities": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["cities"],
                "summary": "List saved cities",
                "responses": {
                    "200": {"description": "Saved cities in store order", "schema": {"$ref": "#/definitions/model.CitiesXML"}},
                    "500": {"description": "Store error", "schema": {"$ref": "#/definitions/model.ErrorXML"}}
                }
            },
            "post": {
                "consumes": ["application/xml"],
                "produces": ["application/xml"],
                "tags": ["cities"],
                "summary": "Save a city",
                "parameters": [
                    {"description": "City to save", "name": "city", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CityPayload"}}
                ],
                "responses": {
                    "201": {"description": "City added, with its id", "schema": {"$ref": "#/definitions/model.ResultXML"}},
                    "400": {"description": "Invalid XML payload", "schema": {"$ref": "#/definitions/model.ErrorXML"}}
                }
            }
        },
        "/cities/{id}": {
            "put": {
                "consumes": ["application/xml"],
                "produces": ["application/xml"],
                "tags": ["cities"],
                "summary": "Rename a saved city",
                "parameters": [
                    {"type": "string", "description": "City id", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "city", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CityPayload"}}
                ],
                "responses": {
                    "200": {"description": "City updated", "schema": {"$ref": "#/definitions/model.ResultXML"}},
                    "400": {"description": "Invalid XML payload", "schema": {"$ref": "#/definitions/model.ErrorXML"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/model.ErrorXML"}}
                }
            },
            "delete": {
                "produces": ["application/xml"],
                "tags": ["cities"],
                "summary": "Delete a saved city",
                "parameters": [
                    {"type": "string", "description": "City id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "City deleted", "schema": {"$ref": "#/definitions/model.ResultXML"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/model.ErrorXML"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/xml"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/weather/{city}": {
            "get": {
                "description": "Look up the current weather of a city at OpenWeather, in metric units",
                "produces": ["application/xml"],
                "tags": ["weather"],
                "summary": "Get current weather",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Current weather", "schema": {"$ref": "#/definitions/model.WeatherXML"}},
                    "502": {"description": "Weather provider error", "schema": {"$ref": "#/definitions/model.ErrorXML"}}
                }
            }
        }
    },
    "definitions": {
        "model.CitiesXML": {
            "type": "object",
            "properties": {
                "cities": {"type": "array", "items": {"$ref": "#/definitions/model.CityXML"}}
            }
        },
        "model.CityPayload": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "model.CityXML": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"$ref": "#/definitions/model.HealthStatus"}
            }
        },
        "model.ErrorXML": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "cache": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "queue": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"$ref": "#/definitions/model.HealthStatus"},
                "store": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        },
        "model.HealthStatus": {
            "type": "string",
            "enum": ["UP", "DOWN", "DISABLED"],
            "x-enum-varnames": ["StatusUp", "StatusDown", "StatusDisabled"]
        },
        "model.ResultXML": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "message": {"type": "string"}}
        },
        "model.WeatherXML": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "country": {"type": "string"},
                "description": {"type": "string"},
                "feels_like": {"type": "string"},
                "humidity": {"type": "string"},
                "temperature": {"type": "string"},
                "wind_speed": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "go-weather API",
	Description:      "Current weather lookups and a saved-city list, exchanged as XML.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
