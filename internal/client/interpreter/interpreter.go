// Package interpreter classifies parsed server responses as weather records, city
// collections or error payloads.
package interpreter

import (
	"go-weather/internal/domain/entity"
	"go-weather/pkg/msg"
	"go-weather/pkg/xmldoc"
)

// ErrorPayload is the message of a failed weather lookup.
type ErrorPayload struct {
	Message string
}

// WeatherResult holds either a weather record or an error payload, never both.
type WeatherResult struct {
	Weather entity.Weather
	Err     *ErrorPayload
}

func (r WeatherResult) OK() bool {
	return r.Err == nil
}

// Weather interprets a weather lookup response. Missing fields are empty strings.
func Weather(doc *xmldoc.Document) WeatherResult {
	weather := doc.First("weather")
	if weather == nil {
		return WeatherResult{Err: errorPayload(doc)}
	}

	return WeatherResult{Weather: entity.Weather{
		Country:     xmldoc.FieldText(weather, "country"),
		City:        xmldoc.FieldText(weather, "city"),
		Temperature: xmldoc.FieldText(weather, "temperature"),
		FeelsLike:   xmldoc.FieldText(weather, "feels_like"),
		Description: xmldoc.FieldText(weather, "description"),
		Humidity:    xmldoc.FieldText(weather, "humidity"),
		WindSpeed:   xmldoc.FieldText(weather, "wind_speed"),
	}}
}

func errorPayload(doc *xmldoc.Document) *ErrorPayload {
	unknown := &ErrorPayload{Message: msg.GetMessage("client.unknown-response")}

	errEl := doc.First("error")
	if errEl == nil {
		return unknown
	}
	message := errEl.First("message")
	if message == nil {
		return unknown
	}
	return &ErrorPayload{Message: message.Text()}
}

// Cities returns every city element in document order. The id attribute wins over a nested id field.
func Cities(doc *xmldoc.Document) []entity.City {
	elements := doc.All("city")
	cities := make([]entity.City, 0, len(elements))

	for _, el := range elements {
		id, ok := el.Attr("id")
		if !ok || id == "" {
			id = xmldoc.FieldText(el, "id")
		}
		cities = append(cities, entity.City{
			ID:   id,
			Name: xmldoc.FieldText(el, "name"),
		})
	}

	return cities
}
