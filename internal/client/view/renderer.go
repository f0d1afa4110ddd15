package view

import (
	"go-weather/internal/client/interpreter"
	"go-weather/pkg/msg"
)

type Renderer struct {
	page    Page
	dialogs Dialogs
}

func NewRenderer(page Page, dialogs Dialogs) *Renderer {
	return &Renderer{page: page, dialogs: dialogs}
}

// RenderWeather shows the record, or alerts the error and leaves the panel as it was.
func (r *Renderer) RenderWeather(result interpreter.WeatherResult) {
	if !result.OK() {
		r.dialogs.Alert(msg.GetMessage("client.notify.error", result.Err.Message))
		return
	}
	r.page.ReplaceWeatherPanel(WeatherCard(result.Weather))
}

func (r *Renderer) RenderCityTable(state CityListState) {
	r.page.ReplaceCityRows(CityTable(state))
}

func (r *Renderer) Alert(message string) {
	r.dialogs.Alert(message)
}

func (r *Renderer) Confirm(message string) bool {
	return r.dialogs.Confirm(message)
}

func (r *Renderer) Prompt(message string) (string, bool) {
	return r.dialogs.Prompt(message)
}

func (r *Renderer) Page() Page {
	return r.page
}
