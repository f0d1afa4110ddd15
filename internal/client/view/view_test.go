package view

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"go-weather/internal/client/interpreter"
	"go-weather/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paris = entity.Weather{
	Country: "FR", City: "Paris", Temperature: "18.5",
	Description: "broken clouds", Humidity: "60", WindSpeed: "4.1",
}

func TestWeatherCard(t *testing.T) {
	t.Parallel()

	panel := WeatherCard(paris)

	assert.Equal(t, WeatherPanel{
		Visible:     true,
		Heading:     "Paris, FR",
		Temperature: "18.5°C",
		Description: "broken clouds",
		Summary:     "18.5°C — broken clouds",
		Details:     "Humidity: 60% • Wind: 4.1 m/s",
	}, panel)
}

func TestWeatherCardWithMissingFields(t *testing.T) {
	t.Parallel()

	panel := WeatherCard(entity.Weather{City: "Paris"})

	assert.True(t, panel.Visible)
	assert.Equal(t, "Paris, ", panel.Heading)
	assert.Equal(t, "°C — ", panel.Summary)
	assert.Equal(t, "Humidity: % • Wind:  m/s", panel.Details)
}

func TestCityTable(t *testing.T) {
	t.Parallel()

	state := CityListState{Seq: 4, Cities: []entity.City{{ID: "2", Name: "Lisbon"}, {ID: "5", Name: "Oslo"}}}

	rows := CityTable(state)

	require.Len(t, rows, 2)
	assert.Equal(t, CityRow{
		ID:   "2",
		Name: "Lisbon",
		Actions: []Action{
			{Kind: ActionEdit, Value: "2"},
			{Kind: ActionDelete, Value: "2"},
			{Kind: ActionView, Value: "Lisbon"},
		},
	}, rows[0])
	assert.Equal(t, "5", rows[1].ID)
	assert.Equal(t, "Oslo", rows[1].Actions[2].Value)

	assert.Empty(t, CityTable(CityListState{}))
}

func TestRenderWeatherIsIdempotent(t *testing.T) {
	t.Parallel()

	page := NewMemoryPage()
	renderer := NewRenderer(page, page)
	result := interpreter.WeatherResult{Weather: paris}

	renderer.RenderWeather(result)
	first := page.WeatherPanel()
	renderer.RenderWeather(result)

	assert.Equal(t, first, page.WeatherPanel())
	assert.Empty(t, page.Alerts())
}

func TestRenderWeatherErrorKeepsPanel(t *testing.T) {
	t.Parallel()

	page := NewMemoryPage()
	renderer := NewRenderer(page, page)

	renderer.RenderWeather(interpreter.WeatherResult{Err: &interpreter.ErrorPayload{Message: "OpenWeather error: 404"}})

	assert.Equal(t, []string{"Error: OpenWeather error: 404"}, page.Alerts())
	assert.False(t, page.WeatherPanel().Visible)

	renderer.RenderWeather(interpreter.WeatherResult{Weather: paris})
	renderer.RenderWeather(interpreter.WeatherResult{Err: &interpreter.ErrorPayload{Message: "Unknown response"}})

	assert.Equal(t, "Paris, FR", page.WeatherPanel().Heading)
	assert.Len(t, page.Alerts(), 2)
}

func TestRenderCityTableReplacesRows(t *testing.T) {
	t.Parallel()

	page := NewMemoryPage()
	renderer := NewRenderer(page, page)

	renderer.RenderCityTable(CityListState{Cities: []entity.City{{ID: "1", Name: "Paris"}, {ID: "2", Name: "Rome"}}})
	renderer.RenderCityTable(CityListState{Cities: []entity.City{{ID: "2", Name: "Rome"}}})

	rows := page.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Rome", rows[0].Name)
	assert.Equal(t, 2, page.RowRenders())
}

func TestMemoryPageScriptedDialogs(t *testing.T) {
	t.Parallel()

	page := NewMemoryPage()
	page.QueueConfirm(true)
	page.QueuePrompt("Lyon", true)

	assert.True(t, page.Confirm("Delete city id 1?"))
	assert.False(t, page.Confirm("Delete city id 2?"))

	value, ok := page.Prompt("New city name:")
	assert.Equal(t, "Lyon", value)
	assert.True(t, ok)

	_, ok = page.Prompt("New city name:")
	assert.False(t, ok)

	assert.Equal(t, []string{"Delete city id 1?", "Delete city id 2?", "New city name:", "New city name:"}, page.Asked())
}

func TestTerminalPage(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	page := NewTerminalPage(bufio.NewReader(strings.NewReader("y\nLyon\n")), &out)

	page.ReplaceWeatherPanel(WeatherCard(paris))
	page.ReplaceCityRows(CityTable(CityListState{Cities: []entity.City{{ID: "1", Name: "Paris"}}}))
	page.Alert("City saved")

	assert.True(t, page.Confirm("Delete city id 1?"))
	name, ok := page.Prompt("New city name:")
	assert.True(t, ok)
	assert.Equal(t, "Lyon", name)

	_, ok = page.Prompt("New city name:")
	assert.False(t, ok)

	rendered := out.String()
	assert.Contains(t, rendered, "Paris, FR")
	assert.Contains(t, rendered, "Humidity: 60% • Wind: 4.1 m/s")
	assert.Contains(t, rendered, "delete 1")
	assert.Contains(t, rendered, "view Paris")
	assert.Contains(t, rendered, "City saved")
	assert.Contains(t, rendered, "Delete city id 1? [y/N]")
}
