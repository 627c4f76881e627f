package memory

import (
	"context"
	"fmt"
	"strconv"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
	"swiftaid/internal/utils"
)

type hospitalRepository struct {
	store *Store
}

func NewHospitalRepository(store *Store) interfaces.HospitalRepository {
	return &hospitalRepository{store: store}
}

func (r *hospitalRepository) Create(ctx context.Context, hospital *models.Hospital) (*models.Hospital, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hospitalSeq++
	stored := cloneHospital(hospital)
	stored.ID = s.hospitalSeq
	s.hospitals[stored.ID] = stored

	return cloneHospital(stored), nil
}

func (r *hospitalRepository) GetByID(ctx context.Context, id int) (*models.Hospital, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	hospital, ok := s.hospitals[id]
	if !ok {
		return nil, fmt.Errorf("hospital %d: %w", id, interfaces.ErrNotFound)
	}
	return cloneHospital(hospital), nil
}

func (r *hospitalRepository) List(ctx context.Context) ([]*models.Hospital, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	hospitals := make([]*models.Hospital, 0, len(s.hospitals))
	for id := 1; id <= s.hospitalSeq; id++ {
		if hospital, ok := s.hospitals[id]; ok {
			hospitals = append(hospitals, cloneHospital(hospital))
		}
	}
	return hospitals, nil
}

// GetNearest is a linear scan in insertion order; the first minimum wins on
// ties.
func (r *hospitalRepository) GetNearest(ctx context.Context, latitude, longitude string) (*models.Hospital, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", latitude, err)
	}
	lon, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", longitude, err)
	}

	var nearest *models.Hospital
	var smallest float64

	for id := 1; id <= s.hospitalSeq; id++ {
		hospital, ok := s.hospitals[id]
		if !ok {
			continue
		}

		hLat, err := strconv.ParseFloat(hospital.Latitude, 64)
		if err != nil {
			continue
		}
		hLon, err := strconv.ParseFloat(hospital.Longitude, 64)
		if err != nil {
			continue
		}

		distance := utils.CalculateDistance(lat, lon, hLat, hLon)
		if nearest == nil || distance < smallest {
			nearest = hospital
			smallest = distance
		}
	}

	if nearest == nil {
		return nil, fmt.Errorf("nearest hospital: %w", interfaces.ErrNotFound)
	}
	return cloneHospital(nearest), nil
}
