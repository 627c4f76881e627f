package interfaces

import (
	"context"

	"swiftaid/internal/models"
)

type AmbulanceRepository interface {
	Create(ctx context.Context, ambulance *models.Ambulance) (*models.Ambulance, error)
	GetByID(ctx context.Context, id int) (*models.Ambulance, error)
	List(ctx context.Context) ([]*models.Ambulance, error)

	// GetAvailable returns the first ambulance in id order whose status is
	// Available, or ErrNotFound when none is free.
	GetAvailable(ctx context.Context) (*models.Ambulance, error)

	UpdateStatus(ctx context.Context, id int, status models.AmbulanceStatus) (*models.Ambulance, error)

	// UpdateLocation overwrites the unit's coordinates. The previous speed is
	// retained when speed is nil.
	UpdateLocation(ctx context.Context, id int, latitude, longitude string, speed *int) (*models.Ambulance, error)
}
