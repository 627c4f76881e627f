package interfaces

import (
	"context"

	"swiftaid/internal/models"
)

type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) (*models.Location, error)
	GetByID(ctx context.Context, id int) (*models.Location, error)
}
