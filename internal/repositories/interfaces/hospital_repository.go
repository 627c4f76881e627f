package interfaces

import (
	"context"

	"swiftaid/internal/models"
)

type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) (*models.Hospital, error)
	GetByID(ctx context.Context, id int) (*models.Hospital, error)
	List(ctx context.Context) ([]*models.Hospital, error)

	// GetNearest scans all hospitals and returns the one closest to the given
	// coordinates; ties go to the first encountered in insertion order.
	// Returns ErrNotFound when no hospitals exist.
	GetNearest(ctx context.Context, latitude, longitude string) (*models.Hospital, error)
}
