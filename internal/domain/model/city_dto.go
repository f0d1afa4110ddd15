package model

import (
	"encoding/xml"

	"go-weather/internal/domain/entity"
)

// CityPayload is the request body of POST /cities and PUT /cities/{id}.
type CityPayload struct {
	XMLName xml.Name `xml:"city" swaggerignore:"true"`
	Name    string   `xml:"name"`
}

// CityXML is one saved city. The id travels as an attribute.
type CityXML struct {
	XMLName xml.Name `xml:"city" swaggerignore:"true"`
	ID      string   `xml:"id,attr"`
	Name    string   `xml:"name"`
}

// CitiesXML is the <cities> collection, also the on-disk layout of the XML city store.
type CitiesXML struct {
	XMLName xml.Name  `xml:"cities" swaggerignore:"true"`
	Cities  []CityXML `xml:"city"`
}

// ResultXML acknowledges a successful mutation.
type ResultXML struct {
	XMLName xml.Name `xml:"result" swaggerignore:"true"`
	Message string   `xml:"message"`
	ID      string   `xml:"id,omitempty"`
}

// ErrorXML is the error payload shared by every endpoint.
type ErrorXML struct {
	XMLName xml.Name `xml:"error" swaggerignore:"true"`
	Message string   `xml:"message"`
}

func NewCitiesXML(cities []entity.City) CitiesXML {
	out := CitiesXML{Cities: make([]CityXML, 0, len(cities))}
	for _, c := range cities {
		out.Cities = append(out.Cities, CityXML{ID: c.ID, Name: c.Name})
	}
	return out
}

func (c CitiesXML) ToEntities() []entity.City {
	out := make([]entity.City, 0, len(c.Cities))
	for _, city := range c.Cities {
		out = append(out, entity.City{ID: city.ID, Name: city.Name})
	}
	return out
}
