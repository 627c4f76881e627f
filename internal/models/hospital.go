package models

// Hospital is static reference data, read-only to the dispatch core.
type Hospital struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Address   string `json:"address"`
}

// HospitalWithDistance annotates a hospital with its distance from a query
// point for the nearby listing.
type HospitalWithDistance struct {
	Hospital
	Distance      string  `json:"distance"`
	DistanceValue float64 `json:"distanceValue"`
}
