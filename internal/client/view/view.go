// Package view turns interpreted responses into page content. WeatherCard and CityTable
// are pure; Renderer applies their output to a Page.
package view

import (
	"fmt"

	"go-weather/internal/domain/entity"
)

// WeatherPanel is the full content of the weather panel. Temperature is the emphasised part of Summary.
type WeatherPanel struct {
	Visible     bool
	Heading     string
	Temperature string
	Description string
	Summary     string
	Details     string
}

type ActionKind string

const (
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
	ActionView   ActionKind = "view"
)

// Action is the data a row control carries: a city id for edit and delete, a city name for view.
type Action struct {
	Kind  ActionKind
	Value string
}

type CityRow struct {
	ID      string
	Name    string
	Actions []Action
}

// CityListState is the city list as of the load numbered Seq. It is replaced wholesale on every applied load.
type CityListState struct {
	Cities []entity.City
	Seq    uint64
}

// WeatherCard builds a visible panel for w.
func WeatherCard(w entity.Weather) WeatherPanel {
	temperature := w.Temperature + "°C"
	return WeatherPanel{
		Visible:     true,
		Heading:     fmt.Sprintf("%s, %s", w.City, w.Country),
		Temperature: temperature,
		Description: w.Description,
		Summary:     fmt.Sprintf("%s — %s", temperature, w.Description),
		Details:     fmt.Sprintf("Humidity: %s%% • Wind: %s m/s", w.Humidity, w.WindSpeed),
	}
}

// CityTable builds one row per city, in order.
func CityTable(state CityListState) []CityRow {
	rows := make([]CityRow, 0, len(state.Cities))
	for _, city := range state.Cities {
		rows = append(rows, CityRow{
			ID:   city.ID,
			Name: city.Name,
			Actions: []Action{
				{Kind: ActionEdit, Value: city.ID},
				{Kind: ActionDelete, Value: city.ID},
				{Kind: ActionView, Value: city.Name},
			},
		})
	}
	return rows
}
