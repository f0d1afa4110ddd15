package entity

// Weather is the current weather for a city. Every field is display text: numbers are
// kept exactly as they travel on the wire and a missing value is the empty string.
type Weather struct {
	Country     string `json:"country"`
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feelsLike"`
	Description string `json:"description"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"windSpeed"`
}
