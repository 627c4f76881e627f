package memory

import (
	"context"
	"fmt"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

type ambulanceRepository struct {
	store *Store
}

func NewAmbulanceRepository(store *Store) interfaces.AmbulanceRepository {
	return &ambulanceRepository{store: store}
}

func (r *ambulanceRepository) Create(ctx context.Context, ambulance *models.Ambulance) (*models.Ambulance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ambulanceSeq++
	stored := cloneAmbulance(ambulance)
	stored.ID = s.ambulanceSeq
	s.ambulances[stored.ID] = stored

	return cloneAmbulance(stored), nil
}

func (r *ambulanceRepository) GetByID(ctx context.Context, id int) (*models.Ambulance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ambulance, ok := s.ambulances[id]
	if !ok {
		return nil, fmt.Errorf("ambulance %d: %w", id, interfaces.ErrNotFound)
	}
	return cloneAmbulance(ambulance), nil
}

func (r *ambulanceRepository) List(ctx context.Context) ([]*models.Ambulance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ambulances := make([]*models.Ambulance, 0, len(s.ambulances))
	for id := 1; id <= s.ambulanceSeq; id++ {
		if ambulance, ok := s.ambulances[id]; ok {
			ambulances = append(ambulances, cloneAmbulance(ambulance))
		}
	}
	return ambulances, nil
}

// GetAvailable scans in id order so the same free unit is always picked
// first; combined with the status flip on dispatch this keeps a unit
// attached to at most one open emergency.
func (r *ambulanceRepository) GetAvailable(ctx context.Context) (*models.Ambulance, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := 1; id <= s.ambulanceSeq; id++ {
		if ambulance, ok := s.ambulances[id]; ok && ambulance.Status == models.AmbulanceStatusAvailable {
			return cloneAmbulance(ambulance), nil
		}
	}
	return nil, fmt.Errorf("available ambulance: %w", interfaces.ErrNotFound)
}

func (r *ambulanceRepository) UpdateStatus(ctx context.Context, id int, status models.AmbulanceStatus) (*models.Ambulance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ambulance, ok := s.ambulances[id]
	if !ok {
		return nil, fmt.Errorf("ambulance %d: %w", id, interfaces.ErrNotFound)
	}
	ambulance.Status = status

	return cloneAmbulance(ambulance), nil
}

func (r *ambulanceRepository) UpdateLocation(ctx context.Context, id int, latitude, longitude string, speed *int) (*models.Ambulance, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ambulance, ok := s.ambulances[id]
	if !ok {
		return nil, fmt.Errorf("ambulance %d: %w", id, interfaces.ErrNotFound)
	}

	ambulance.Latitude = &latitude
	ambulance.Longitude = &longitude
	if speed != nil {
		v := *speed
		ambulance.Speed = &v
	}

	return cloneAmbulance(ambulance), nil
}
