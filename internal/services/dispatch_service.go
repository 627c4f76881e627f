package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
	"swiftaid/internal/utils"
	"swiftaid/internal/validators"
	"swiftaid/pkg/logger"
)

// DispatchService orchestrates the emergency lifecycle: creation with a
// single dispatch attempt, externally driven status transitions, and
// cancellation with ambulance release.
type DispatchService interface {
	CreateEmergency(ctx context.Context, userID int, request *validators.CreateEmergencyRequest) (*models.Emergency, error)
	GetEmergency(ctx context.Context, id int) (*models.Emergency, error)
	UpdateStatus(ctx context.Context, id int, status models.EmergencyStatus) (*models.Emergency, error)
	Cancel(ctx context.Context, id int) error

	NearbyHospitals(ctx context.Context, latitude, longitude float64) ([]*models.HospitalWithDistance, error)
	ListActivities(ctx context.Context, userID int) ([]*models.Activity, error)
	GetUser(ctx context.Context, userID int) (*models.User, error)
}

type dispatchService struct {
	userRepo      interfaces.UserRepository
	locationRepo  interfaces.LocationRepository
	ambulanceRepo interfaces.AmbulanceRepository
	hospitalRepo  interfaces.HospitalRepository
	emergencyRepo interfaces.EmergencyRepository
	activityRepo  interfaces.ActivityRepository
	log           *logger.Logger
}

func NewDispatchService(
	userRepo interfaces.UserRepository,
	locationRepo interfaces.LocationRepository,
	ambulanceRepo interfaces.AmbulanceRepository,
	hospitalRepo interfaces.HospitalRepository,
	emergencyRepo interfaces.EmergencyRepository,
	activityRepo interfaces.ActivityRepository,
	log *logger.Logger,
) DispatchService {
	return &dispatchService{
		userRepo:      userRepo,
		locationRepo:  locationRepo,
		ambulanceRepo: ambulanceRepo,
		hospitalRepo:  hospitalRepo,
		emergencyRepo: emergencyRepo,
		activityRepo:  activityRepo,
		log:           log,
	}
}

func (s *dispatchService) CreateEmergency(ctx context.Context, userID int, request *validators.CreateEmergencyRequest) (*models.Emergency, error) {
	if errs := validators.ValidateCreateEmergency(request); len(errs) > 0 {
		return nil, errs
	}

	location, err := s.locationRepo.Create(ctx, &models.Location{
		Latitude:  strconv.FormatFloat(*request.Location.Latitude, 'f', -1, 64),
		Longitude: strconv.FormatFloat(*request.Location.Longitude, 'f', -1, 64),
		Address:   request.Location.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	emergency, err := s.emergencyRepo.Create(ctx, &models.Emergency{
		Type:       models.EmergencyType(request.Type),
		UserID:     userID,
		LocationID: location.ID,
		Patient: models.PatientInfo{
			FirstName:   request.Patient.FirstName,
			LastName:    request.Patient.LastName,
			PhoneNumber: request.Patient.PhoneNumber,
			Notes:       request.Patient.Notes,
		},
		Location: *location,
	})
	if err != nil {
		return nil, fmt.Errorf("create emergency: %w", err)
	}

	if err := s.attemptDispatch(ctx, emergency.ID, location); err != nil {
		return nil, err
	}

	// Re-read for the composed view with any assigned snapshots.
	emergency, err = s.emergencyRepo.GetByID(ctx, emergency.ID)
	if err != nil {
		return nil, fmt.Errorf("reload emergency: %w", err)
	}

	if _, err := s.activityRepo.Create(ctx, &models.Activity{
		Type:        models.ActivityEmergencyRequest,
		Status:      string(emergency.Status),
		UserID:      userID,
		EmergencyID: &emergency.ID,
	}); err != nil {
		return nil, fmt.Errorf("record activity: %w", err)
	}

	s.log.WithUserID(userID).WithEmergencyID(emergency.ID).
		WithField("status", emergency.Status).
		Info("Emergency created")

	return emergency, nil
}

// attemptDispatch runs the single dispatch attempt made at creation time. A
// Pending result when no unit is free is a normal outcome, not an error; a
// freed ambulance does not trigger reassignment later.
func (s *dispatchService) attemptDispatch(ctx context.Context, emergencyID int, location *models.Location) error {
	ambulance, err := s.ambulanceRepo.GetAvailable(ctx)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			s.log.WithEmergencyID(emergencyID).Info("No ambulance available, emergency stays pending")
			return nil
		}
		return fmt.Errorf("find available ambulance: %w", err)
	}

	if _, err := s.ambulanceRepo.UpdateStatus(ctx, ambulance.ID, models.AmbulanceStatusDispatched); err != nil {
		return fmt.Errorf("dispatch ambulance %d: %w", ambulance.ID, err)
	}
	if _, err := s.emergencyRepo.AssignAmbulance(ctx, emergencyID, ambulance.ID); err != nil {
		return fmt.Errorf("assign ambulance %d: %w", ambulance.ID, err)
	}

	hospital, err := s.hospitalRepo.GetNearest(ctx, location.Latitude, location.Longitude)
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return fmt.Errorf("find nearest hospital: %w", err)
	}
	if hospital != nil {
		if _, err := s.emergencyRepo.AssignHospital(ctx, emergencyID, hospital.ID); err != nil {
			return fmt.Errorf("assign hospital %d: %w", hospital.ID, err)
		}
	}

	if _, err := s.emergencyRepo.SetETA(ctx, emergencyID, s.estimateETA(location, ambulance)); err != nil {
		return fmt.Errorf("set eta: %w", err)
	}

	if _, err := s.emergencyRepo.UpdateStatus(ctx, emergencyID, models.EmergencyStatusDispatched); err != nil {
		return fmt.Errorf("mark emergency dispatched: %w", err)
	}

	s.log.WithEmergencyID(emergencyID).WithAmbulanceID(ambulance.ID).Info("Ambulance dispatched")
	return nil
}

// estimateETA derives an arrival estimate from the ambulance's last known
// position. There is no road-network routing; straight-line distance at city
// speed is the best available figure, with a fixed fallback when the unit
// has never reported a position.
func (s *dispatchService) estimateETA(location *models.Location, ambulance *models.Ambulance) int {
	if ambulance.Latitude == nil || ambulance.Longitude == nil {
		return utils.DefaultETAMinutes
	}

	lat, err1 := strconv.ParseFloat(location.Latitude, 64)
	lon, err2 := strconv.ParseFloat(location.Longitude, 64)
	aLat, err3 := strconv.ParseFloat(*ambulance.Latitude, 64)
	aLon, err4 := strconv.ParseFloat(*ambulance.Longitude, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return utils.DefaultETAMinutes
	}

	speed := 0.0
	if ambulance.Speed != nil {
		speed = float64(*ambulance.Speed)
	}

	distance := utils.CalculateDistance(lat, lon, aLat, aLon)
	return utils.EstimateETAMinutes(distance, speed)
}

func (s *dispatchService) GetEmergency(ctx context.Context, id int) (*models.Emergency, error) {
	return s.emergencyRepo.GetByID(ctx, id)
}

// UpdateStatus applies an externally driven transition. Callers may skip
// intermediate states; only terminal states are guarded: a Completed or
// Cancelled emergency is returned unchanged.
func (s *dispatchService) UpdateStatus(ctx context.Context, id int, status models.EmergencyStatus) (*models.Emergency, error) {
	emergency, err := s.emergencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if emergency.Status.IsTerminal() {
		s.log.WithEmergencyID(id).
			WithField("status", emergency.Status).
			Warn("Status update on terminal emergency ignored")
		return emergency, nil
	}

	updated, err := s.emergencyRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.LogDispatchEvent(id, "status_changed", map[string]interface{}{
		"from": emergency.Status,
		"to":   status,
	})

	return updated, nil
}

// Cancel transitions the emergency to Cancelled and releases the attached
// ambulance, if any, back to Available. Cancelling an already terminal
// emergency is a no-op.
func (s *dispatchService) Cancel(ctx context.Context, id int) error {
	emergency, err := s.emergencyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if emergency.Status.IsTerminal() {
		s.log.WithEmergencyID(id).
			WithField("status", emergency.Status).
			Warn("Cancel on terminal emergency ignored")
		return nil
	}

	if _, err := s.emergencyRepo.UpdateStatus(ctx, id, models.EmergencyStatusCancelled); err != nil {
		return err
	}

	if emergency.AmbulanceID != nil {
		if _, err := s.ambulanceRepo.UpdateStatus(ctx, *emergency.AmbulanceID, models.AmbulanceStatusAvailable); err != nil {
			return fmt.Errorf("release ambulance %d: %w", *emergency.AmbulanceID, err)
		}
	}

	if _, err := s.activityRepo.Create(ctx, &models.Activity{
		Type:        models.ActivityEmergencyCancelled,
		Status:      string(models.EmergencyStatusCancelled),
		UserID:      emergency.UserID,
		EmergencyID: &emergency.ID,
	}); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}

	s.log.WithEmergencyID(id).Info("Emergency cancelled")
	return nil
}

// NearbyHospitals annotates every hospital with its distance to the query
// point and sorts ascending.
func (s *dispatchService) NearbyHospitals(ctx context.Context, latitude, longitude float64) ([]*models.HospitalWithDistance, error) {
	hospitals, err := s.hospitalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	annotated := make([]*models.HospitalWithDistance, 0, len(hospitals))
	for _, hospital := range hospitals {
		hLat, err := strconv.ParseFloat(hospital.Latitude, 64)
		if err != nil {
			continue
		}
		hLon, err := strconv.ParseFloat(hospital.Longitude, 64)
		if err != nil {
			continue
		}

		distance := utils.CalculateDistance(latitude, longitude, hLat, hLon)
		annotated = append(annotated, &models.HospitalWithDistance{
			Hospital:      *hospital,
			Distance:      utils.FormatDistanceKM(distance),
			DistanceValue: distance,
		})
	}

	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].DistanceValue < annotated[j].DistanceValue
	})

	return annotated, nil
}

func (s *dispatchService) ListActivities(ctx context.Context, userID int) ([]*models.Activity, error) {
	return s.activityRepo.ListByUser(ctx, userID)
}

func (s *dispatchService) GetUser(ctx context.Context, userID int) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}
