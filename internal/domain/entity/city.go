package entity

// City is a saved city. ID is assigned by the store and is required for update and delete.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
