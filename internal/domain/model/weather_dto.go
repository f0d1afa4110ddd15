package model

import (
	"encoding/xml"

	"go-weather/internal/domain/entity"
)

// WeatherXML is the <weather> document returned by GET /weather/{city}.
type WeatherXML struct {
	XMLName     xml.Name `xml:"weather" swaggerignore:"true"`
	City        string   `xml:"city"`
	Country     string   `xml:"country"`
	Temperature string   `xml:"temperature"`
	FeelsLike   string   `xml:"feels_like"`
	Humidity    string   `xml:"humidity"`
	Description string   `xml:"description"`
	WindSpeed   string   `xml:"wind_speed"`
}

func NewWeatherXML(w entity.Weather) WeatherXML {
	return WeatherXML{
		City:        w.City,
		Country:     w.Country,
		Temperature: w.Temperature,
		FeelsLike:   w.FeelsLike,
		Humidity:    w.Humidity,
		Description: w.Description,
		WindSpeed:   w.WindSpeed,
	}
}
