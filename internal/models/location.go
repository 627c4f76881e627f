package models

// Location is a single logical placement. Coordinates are kept as decimal
// text so they round-trip exactly. Records are immutable once created; a
// moving ambulance mutates its own fields instead of creating new Locations.
type Location struct {
	ID        int    `json:"id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Address   string `json:"address"`
}
