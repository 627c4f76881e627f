package interfaces

import (
	"context"

	"swiftaid/internal/models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) (*models.Activity, error)

	// ListByUser returns the user's activity records, newest first.
	ListByUser(ctx context.Context, userID int) ([]*models.Activity, error)
}
