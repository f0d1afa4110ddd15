package model

import "encoding/xml"

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp       HealthStatus = "UP"
	StatusDown     HealthStatus = "DOWN"
	StatusDisabled HealthStatus = "DISABLED"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus `xml:"status"`
	Message string       `xml:"message,omitempty"`
}

// HealthResponse represents the health check response of all application
type HealthResponse struct {
	XMLName xml.Name              `xml:"health" swaggerignore:"true"`
	Status  HealthStatus          `xml:"status"`
	Store   ComponentHealthStatus `xml:"store"`
	Cache   ComponentHealthStatus `xml:"cache"`
	Queue   ComponentHealthStatus `xml:"queue"`
}
