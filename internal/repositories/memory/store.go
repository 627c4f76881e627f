package memory

import (
	"sync"

	"swiftaid/internal/models"
)

// Store owns all entity state: per-entity maps keyed by auto-incrementing
// integer ids, guarded by one mutex so every operation is atomic with
// respect to a single mutation. Entities are never deleted, only
// status-transitioned. All reads hand out copies; callers must come back
// through a repository method to mutate.
type Store struct {
	mu sync.RWMutex

	users       map[int]*models.User
	locations   map[int]*models.Location
	ambulances  map[int]*models.Ambulance
	hospitals   map[int]*models.Hospital
	emergencies map[int]*models.Emergency
	activities  map[int]*models.Activity

	userSeq      int
	locationSeq  int
	ambulanceSeq int
	hospitalSeq  int
	emergencySeq int
	activitySeq  int
}

func NewStore() *Store {
	return &Store{
		users:       make(map[int]*models.User),
		locations:   make(map[int]*models.Location),
		ambulances:  make(map[int]*models.Ambulance),
		hospitals:   make(map[int]*models.Hospital),
		emergencies: make(map[int]*models.Emergency),
		activities:  make(map[int]*models.Activity),
	}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneLocation(l *models.Location) *models.Location {
	c := *l
	return &c
}

func cloneAmbulance(a *models.Ambulance) *models.Ambulance {
	c := *a
	if a.Latitude != nil {
		v := *a.Latitude
		c.Latitude = &v
	}
	if a.Longitude != nil {
		v := *a.Longitude
		c.Longitude = &v
	}
	if a.Speed != nil {
		v := *a.Speed
		c.Speed = &v
	}
	return &c
}

func cloneHospital(h *models.Hospital) *models.Hospital {
	c := *h
	return &c
}

func cloneEmergency(e *models.Emergency) *models.Emergency {
	c := *e
	if e.AmbulanceID != nil {
		v := *e.AmbulanceID
		c.AmbulanceID = &v
	}
	if e.HospitalID != nil {
		v := *e.HospitalID
		c.HospitalID = &v
	}
	if e.Ambulance != nil {
		c.Ambulance = cloneAmbulance(e.Ambulance)
	}
	if e.Hospital != nil {
		c.Hospital = cloneHospital(e.Hospital)
	}
	if e.ETA != nil {
		v := *e.ETA
		c.ETA = &v
	}
	return &c
}

func cloneActivity(a *models.Activity) *models.Activity {
	c := *a
	if a.EmergencyID != nil {
		v := *a.EmergencyID
		c.EmergencyID = &v
	}
	return &c
}
