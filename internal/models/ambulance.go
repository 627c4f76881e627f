package models

type AmbulanceStatus string

const (
	AmbulanceStatusAvailable  AmbulanceStatus = "Available"
	AmbulanceStatusDispatched AmbulanceStatus = "Dispatched"
	AmbulanceStatusEnRoute    AmbulanceStatus = "EnRoute"
	AmbulanceStatusOnScene    AmbulanceStatus = "OnScene"
)

// Ambulance is a dispatchable mobile unit. Latitude/Longitude/Speed are nil
// until the unit reports its first position.
type Ambulance struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Status    AmbulanceStatus `json:"status"`
	Latitude  *string         `json:"latitude"`
	Longitude *string         `json:"longitude"`
	Speed     *int            `json:"speed"`
}
