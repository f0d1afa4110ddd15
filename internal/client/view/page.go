package view

// Page is the document the client renders into.
type Page interface {
	CityInput() string
	SetCityInput(value string)
	ReplaceWeatherPanel(panel WeatherPanel)
	ReplaceCityRows(rows []CityRow)
}

// Dialogs are blocking user interactions. Prompt reports false when the user cancels.
type Dialogs interface {
	Alert(message string)
	Confirm(message string) bool
	Prompt(message string) (string, bool)
}
