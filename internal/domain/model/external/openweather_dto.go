package external

import "encoding/json"

// CurrentWeatherResponse is the subset of OpenWeather's /data/2.5/weather payload we map.
// Numbers are kept as json.Number so that their wire text is preserved.
type CurrentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      json.Number `json:"temp"`
		FeelsLike json.Number `json:"feels_like"`
		Humidity  json.Number `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed json.Number `json:"speed"`
	} `json:"wind"`
}

// APIErrorResponse is OpenWeather's error body. cod is a string or a number depending on the endpoint.
type APIErrorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
