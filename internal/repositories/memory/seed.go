package memory

import (
	"context"
	"time"

	"swiftaid/internal/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// Seed loads the fixed sample data set the process starts with: one
// requester, two hospitals, two ambulances and a couple of historical
// activity records.
func Seed(ctx context.Context, store *Store) error {
	users := NewUserRepository(store)
	hospitals := NewHospitalRepository(store)
	ambulances := NewAmbulanceRepository(store)
	activities := NewActivityRepository(store)

	user, err := users.Create(ctx, &models.User{
		Username:    "john.doe",
		Password:    "password123",
		FirstName:   "John",
		LastName:    "Doe",
		PhoneNumber: "(555) 123-4567",
	})
	if err != nil {
		return err
	}

	seedHospitals := []*models.Hospital{
		{
			Name:      "Memorial Hospital",
			Latitude:  "34.0522",
			Longitude: "118.2437",
			Address:   "123 Hospital St, Los Angeles, CA",
		},
		{
			Name:      "Community Medical Center",
			Latitude:  "34.0548",
			Longitude: "118.2456",
			Address:   "456 Medical Ave, Los Angeles, CA",
		},
	}
	for _, h := range seedHospitals {
		if _, err := hospitals.Create(ctx, h); err != nil {
			return err
		}
	}

	seedAmbulances := []*models.Ambulance{
		{
			Name:      "Ambulance #247",
			Status:    models.AmbulanceStatusAvailable,
			Latitude:  strPtr("34.0500"),
			Longitude: strPtr("118.2400"),
			Speed:     intPtr(0),
		},
		{
			Name:      "Ambulance #156",
			Status:    models.AmbulanceStatusAvailable,
			Latitude:  strPtr("34.0550"),
			Longitude: strPtr("118.2500"),
			Speed:     intPtr(0),
		},
	}
	for _, a := range seedAmbulances {
		if _, err := ambulances.Create(ctx, a); err != nil {
			return err
		}
	}

	seedActivities := []*models.Activity{
		{
			Type:   models.ActivityEmergencyRequest,
			Status: "Resolved",
			UserID: user.ID,
			Date:   time.Now().Add(-5 * 24 * time.Hour),
		},
		{
			Type:   "Medical Record Updated",
			Status: "Info",
			UserID: user.ID,
			Date:   time.Now().Add(-10 * 24 * time.Hour),
		},
	}
	for _, a := range seedActivities {
		if _, err := activities.Create(ctx, a); err != nil {
			return err
		}
	}

	return nil
}
