package entity

// CityEventType names the mutation a CityEvent describes.
type CityEventType string

const (
	CityCreated CityEventType = "CITY_CREATED"
	CityUpdated CityEventType = "CITY_UPDATED"
	CityDeleted CityEventType = "CITY_DELETED"
)

// CityEvent is published after a saved city changes.
type CityEvent struct {
	ID         string        `json:"id"`
	Type       CityEventType `json:"type"`
	CityID     string        `json:"cityId"`
	Name       string        `json:"name,omitempty"`
	OccurredAt string        `json:"occurredAt"`
}
