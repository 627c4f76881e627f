package websocket

import (
	"encoding/json"

	"swiftaid/internal/models"
)

// Inbound message types.
const (
	MessageAuth              = "AUTH"
	MessageNewEmergency      = "NEW_EMERGENCY"
	MessageStatusUpdate      = "STATUS_UPDATE"
	MessageCancelEmergency   = "CANCEL_EMERGENCY"
	MessageAmbulanceLocation = "AMBULANCE_LOCATION"
)

// Outbound message types.
const (
	MessageEmergencyAlert          = "EMERGENCY_ALERT"
	MessageEmergencyUpdate         = "EMERGENCY_UPDATE"
	MessageEmergencyCancelled      = "EMERGENCY_CANCELLED"
	MessageAmbulanceLocationUpdate = "AMBULANCE_LOCATION_UPDATE"
)

// Message is the closed tagged union exchanged over the realtime channel,
// keyed by Type. Optional fields are pointers so the hub can tell absent
// from zero; unknown fields are ignored on decode. The emergency payload is
// relayed as raw JSON, the hub never interprets it.
type Message struct {
	Type        string            `json:"type"`
	UserID      *int              `json:"userId,omitempty"`
	Emergency   json.RawMessage   `json:"emergency,omitempty"`
	EmergencyID *int              `json:"emergencyId,omitempty"`
	AmbulanceID *int              `json:"ambulanceId,omitempty"`
	Latitude    *string           `json:"latitude,omitempty"`
	Longitude   *string           `json:"longitude,omitempty"`
	Speed       *int              `json:"speed,omitempty"`
	Ambulance   *models.Ambulance `json:"ambulance,omitempty"`
}
