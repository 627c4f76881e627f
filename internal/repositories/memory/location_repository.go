package memory

import (
	"context"
	"fmt"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

type locationRepository struct {
	store *Store
}

func NewLocationRepository(store *Store) interfaces.LocationRepository {
	return &locationRepository{store: store}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) (*models.Location, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locationSeq++
	stored := cloneLocation(location)
	stored.ID = s.locationSeq
	s.locations[stored.ID] = stored

	return cloneLocation(stored), nil
}

func (r *locationRepository) GetByID(ctx context.Context, id int) (*models.Location, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	location, ok := s.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %d: %w", id, interfaces.ErrNotFound)
	}
	return cloneLocation(location), nil
}
