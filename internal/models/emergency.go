package models

import "time"

type EmergencyType string
type EmergencyStatus string

const (
	EmergencyTypeCardiac     EmergencyType = "Cardiac"
	EmergencyTypeInjury      EmergencyType = "Injury"
	EmergencyTypeRespiratory EmergencyType = "Respiratory"
	EmergencyTypeOther       EmergencyType = "Other"

	EmergencyStatusPending    EmergencyStatus = "Pending"
	EmergencyStatusDispatched EmergencyStatus = "Dispatched"
	EmergencyStatusEnRoute    EmergencyStatus = "EnRoute"
	EmergencyStatusArrived    EmergencyStatus = "Arrived"
	EmergencyStatusCompleted  EmergencyStatus = "Completed"
	EmergencyStatusCancelled  EmergencyStatus = "Cancelled"
)

// IsTerminal reports whether no further lifecycle transitions are allowed.
func (s EmergencyStatus) IsTerminal() bool {
	return s == EmergencyStatusCompleted || s == EmergencyStatusCancelled
}

// PatientInfo is snapshotted onto the emergency at creation time.
type PatientInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Notes       string `json:"notes,omitempty"`
}

// Emergency is one incident lifecycle from creation to Completed/Cancelled.
// Ambulance and Hospital are embedded snapshots taken at assignment; the
// repository remains the source of truth for the live records.
type Emergency struct {
	ID          int             `json:"id"`
	Type        EmergencyType   `json:"type"`
	Status      EmergencyStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UserID      int             `json:"userId"`
	LocationID  int             `json:"locationId"`
	AmbulanceID *int            `json:"ambulanceId,omitempty"`
	HospitalID  *int            `json:"hospitalId,omitempty"`
	Patient     PatientInfo     `json:"patient"`
	Location    Location        `json:"location"`
	Ambulance   *Ambulance      `json:"ambulance,omitempty"`
	Hospital    *Hospital       `json:"hospital,omitempty"`
	ETA         *int            `json:"eta,omitempty"`
}

// EmergencyView is the composed representation returned by the API and
// pushed over the realtime channel.
type EmergencyView struct {
	ID                  int             `json:"id"`
	Type                EmergencyType   `json:"type"`
	Status              EmergencyStatus `json:"status"`
	CreatedAt           time.Time       `json:"createdAt"`
	Patient             PatientInfo     `json:"patient"`
	Location            Location        `json:"location"`
	Ambulance           *Ambulance      `json:"ambulance,omitempty"`
	DestinationHospital *Hospital       `json:"destinationHospital,omitempty"`
	ETA                 *int            `json:"eta,omitempty"`
}

func NewEmergencyView(e *Emergency) *EmergencyView {
	return &EmergencyView{
		ID:                  e.ID,
		Type:                e.Type,
		Status:              e.Status,
		CreatedAt:           e.CreatedAt,
		Patient:             e.Patient,
		Location:            e.Location,
		Ambulance:           e.Ambulance,
		DestinationHospital: e.Hospital,
		ETA:                 e.ETA,
	}
}
