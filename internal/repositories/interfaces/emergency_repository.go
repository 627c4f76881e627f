package interfaces

import (
	"context"

	"swiftaid/internal/models"
)

type EmergencyRepository interface {
	Create(ctx context.Context, emergency *models.Emergency) (*models.Emergency, error)
	GetByID(ctx context.Context, id int) (*models.Emergency, error)
	ListByUser(ctx context.Context, userID int) ([]*models.Emergency, error)

	// UpdateStatus overwrites the status field only. Terminal-state
	// enforcement is the dispatch service's responsibility.
	UpdateStatus(ctx context.Context, id int, status models.EmergencyStatus) (*models.Emergency, error)

	// AssignAmbulance / AssignHospital cross-link by id and embed a snapshot
	// of the linked record into the emergency.
	AssignAmbulance(ctx context.Context, emergencyID, ambulanceID int) (*models.Emergency, error)
	AssignHospital(ctx context.Context, emergencyID, hospitalID int) (*models.Emergency, error)

	SetETA(ctx context.Context, id int, etaMinutes int) (*models.Emergency, error)
}
