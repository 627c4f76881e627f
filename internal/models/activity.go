package models

import "time"

// Activity types recorded by the dispatch coordinator.
const (
	ActivityEmergencyRequest   = "Emergency Request"
	ActivityEmergencyCancelled = "Emergency Cancelled"
)

// Activity is an append-only audit entry. Records are never mutated after
// creation.
type Activity struct {
	ID          int       `json:"id"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	UserID      int       `json:"userId"`
	EmergencyID *int      `json:"emergencyId,omitempty"`
}
