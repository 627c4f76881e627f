package memory

import (
	"context"
	"fmt"
	"time"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

type emergencyRepository struct {
	store *Store
}

func NewEmergencyRepository(store *Store) interfaces.EmergencyRepository {
	return &emergencyRepository{store: store}
}

func (r *emergencyRepository) Create(ctx context.Context, emergency *models.Emergency) (*models.Emergency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.emergencySeq++
	stored := cloneEmergency(emergency)
	stored.ID = s.emergencySeq
	stored.Status = models.EmergencyStatusPending
	stored.CreatedAt = time.Now()
	s.emergencies[stored.ID] = stored

	return cloneEmergency(stored), nil
}

func (r *emergencyRepository) GetByID(ctx context.Context, id int) (*models.Emergency, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	emergency, ok := s.emergencies[id]
	if !ok {
		return nil, fmt.Errorf("emergency %d: %w", id, interfaces.ErrNotFound)
	}
	return cloneEmergency(emergency), nil
}

func (r *emergencyRepository) ListByUser(ctx context.Context, userID int) ([]*models.Emergency, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var emergencies []*models.Emergency
	for id := 1; id <= s.emergencySeq; id++ {
		if emergency, ok := s.emergencies[id]; ok && emergency.UserID == userID {
			emergencies = append(emergencies, cloneEmergency(emergency))
		}
	}
	return emergencies, nil
}

func (r *emergencyRepository) UpdateStatus(ctx context.Context, id int, status models.EmergencyStatus) (*models.Emergency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emergency, ok := s.emergencies[id]
	if !ok {
		return nil, fmt.Errorf("emergency %d: %w", id, interfaces.ErrNotFound)
	}
	emergency.Status = status

	return cloneEmergency(emergency), nil
}

func (r *emergencyRepository) AssignAmbulance(ctx context.Context, emergencyID, ambulanceID int) (*models.Emergency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emergency, ok := s.emergencies[emergencyID]
	if !ok {
		return nil, fmt.Errorf("emergency %d: %w", emergencyID, interfaces.ErrNotFound)
	}
	ambulance, ok := s.ambulances[ambulanceID]
	if !ok {
		return nil, fmt.Errorf("ambulance %d: %w", ambulanceID, interfaces.ErrNotFound)
	}

	id := ambulanceID
	emergency.AmbulanceID = &id
	emergency.Ambulance = cloneAmbulance(ambulance)

	return cloneEmergency(emergency), nil
}

func (r *emergencyRepository) AssignHospital(ctx context.Context, emergencyID, hospitalID int) (*models.Emergency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emergency, ok := s.emergencies[emergencyID]
	if !ok {
		return nil, fmt.Errorf("emergency %d: %w", emergencyID, interfaces.ErrNotFound)
	}
	hospital, ok := s.hospitals[hospitalID]
	if !ok {
		return nil, fmt.Errorf("hospital %d: %w", hospitalID, interfaces.ErrNotFound)
	}

	id := hospitalID
	emergency.HospitalID = &id
	emergency.Hospital = cloneHospital(hospital)

	return cloneEmergency(emergency), nil
}

func (r *emergencyRepository) SetETA(ctx context.Context, id int, etaMinutes int) (*models.Emergency, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	emergency, ok := s.emergencies[id]
	if !ok {
		return nil, fmt.Errorf("emergency %d: %w", id, interfaces.ErrNotFound)
	}
	emergency.ETA = &etaMinutes

	return cloneEmergency(emergency), nil
}
