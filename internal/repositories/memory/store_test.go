package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

func TestLocationRoundTrip(t *testing.T) {
	store := NewStore()
	repo := NewLocationRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Location{
		Latitude:  "34.0522",
		Longitude: "-118.2437",
		Address:   "123 Main St",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "34.0522", got.Latitude)
	assert.Equal(t, "-118.2437", got.Longitude)
	assert.Equal(t, "123 Main St", got.Address)
}

func TestLocationGetByIDNotFound(t *testing.T) {
	repo := NewLocationRepository(NewStore())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestAmbulanceIDsAreMonotonic(t *testing.T) {
	store := NewStore()
	repo := NewAmbulanceRepository(store)
	ctx := context.Background()

	first, err := repo.Create(ctx, &models.Ambulance{Name: "Unit 1", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &models.Ambulance{Name: "Unit 2", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestGetAvailablePicksFirstByID(t *testing.T) {
	store := NewStore()
	repo := NewAmbulanceRepository(store)
	ctx := context.Background()

	a1, err := repo.Create(ctx, &models.Ambulance{Name: "Unit 1", Status: models.AmbulanceStatusDispatched})
	require.NoError(t, err)
	a2, err := repo.Create(ctx, &models.Ambulance{Name: "Unit 2", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Ambulance{Name: "Unit 3", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)

	got, err := repo.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, a2.ID, got.ID)

	// A dispatched unit is excluded until released.
	_, err = repo.UpdateStatus(ctx, a2.ID, models.AmbulanceStatusDispatched)
	require.NoError(t, err)

	got, err = repo.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ID)

	_, err = repo.UpdateStatus(ctx, a1.ID, models.AmbulanceStatusAvailable)
	require.NoError(t, err)

	got, err = repo.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, a1.ID, got.ID)
}

func TestGetAvailableNoneFree(t *testing.T) {
	store := NewStore()
	repo := NewAmbulanceRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Ambulance{Name: "Unit 1", Status: models.AmbulanceStatusDispatched})
	require.NoError(t, err)

	_, err = repo.GetAvailable(ctx)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestUpdateAmbulanceLocationRetainsSpeedWhenNil(t *testing.T) {
	store := NewStore()
	repo := NewAmbulanceRepository(store)
	ctx := context.Background()

	speed := 42
	created, err := repo.Create(ctx, &models.Ambulance{
		Name:   "Unit 1",
		Status: models.AmbulanceStatusAvailable,
		Speed:  &speed,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateLocation(ctx, created.ID, "34.06", "-118.25", nil)
	require.NoError(t, err)
	require.NotNil(t, updated.Latitude)
	assert.Equal(t, "34.06", *updated.Latitude)
	require.NotNil(t, updated.Speed)
	assert.Equal(t, 42, *updated.Speed)

	newSpeed := 55
	updated, err = repo.UpdateLocation(ctx, created.ID, "34.07", "-118.26", &newSpeed)
	require.NoError(t, err)
	require.NotNil(t, updated.Speed)
	assert.Equal(t, 55, *updated.Speed)
}

func TestUpdateAmbulanceLocationUnknownID(t *testing.T) {
	repo := NewAmbulanceRepository(NewStore())

	_, err := repo.UpdateLocation(context.Background(), 99, "0", "0", nil)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestGetNearestHospitalPicksMinimum(t *testing.T) {
	store := NewStore()
	repo := NewHospitalRepository(store)
	ctx := context.Background()

	// Query point 34.05,-118.24; offsets chosen so distances are roughly
	// 2.3 km, 0.4 km and 5.0 km.
	_, err := repo.Create(ctx, &models.Hospital{Name: "Far", Latitude: "34.0707", Longitude: "-118.24"})
	require.NoError(t, err)
	near, err := repo.Create(ctx, &models.Hospital{Name: "Near", Latitude: "34.0536", Longitude: "-118.24"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Hospital{Name: "Farthest", Latitude: "34.0950", Longitude: "-118.24"})
	require.NoError(t, err)

	got, err := repo.GetNearest(ctx, "34.05", "-118.24")
	require.NoError(t, err)
	assert.Equal(t, near.ID, got.ID)
	assert.Equal(t, "Near", got.Name)
}

func TestGetNearestHospitalTieBreakFirstWins(t *testing.T) {
	store := NewStore()
	repo := NewHospitalRepository(store)
	ctx := context.Background()

	first, err := repo.Create(ctx, &models.Hospital{Name: "First", Latitude: "34.06", Longitude: "-118.24"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Hospital{Name: "Twin", Latitude: "34.06", Longitude: "-118.24"})
	require.NoError(t, err)

	got, err := repo.GetNearest(ctx, "34.05", "-118.24")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestGetNearestHospitalEmptySet(t *testing.T) {
	repo := NewHospitalRepository(NewStore())

	_, err := repo.GetNearest(context.Background(), "34.05", "-118.24")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestAssignAmbulanceEmbedsSnapshot(t *testing.T) {
	store := NewStore()
	ambulances := NewAmbulanceRepository(store)
	emergencies := NewEmergencyRepository(store)
	ctx := context.Background()

	ambulance, err := ambulances.Create(ctx, &models.Ambulance{Name: "Unit 1", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)
	emergency, err := emergencies.Create(ctx, &models.Emergency{Type: models.EmergencyTypeCardiac, UserID: 1})
	require.NoError(t, err)

	updated, err := emergencies.AssignAmbulance(ctx, emergency.ID, ambulance.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.AmbulanceID)
	assert.Equal(t, ambulance.ID, *updated.AmbulanceID)
	require.NotNil(t, updated.Ambulance)
	assert.Equal(t, "Unit 1", updated.Ambulance.Name)

	// The snapshot is a copy taken at assignment time; later mutations of
	// the live record do not leak into it.
	_, err = ambulances.UpdateStatus(ctx, ambulance.ID, models.AmbulanceStatusEnRoute)
	require.NoError(t, err)
	reread, err := emergencies.GetByID(ctx, emergency.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceStatusAvailable, reread.Ambulance.Status)
}

func TestAssignAmbulanceUnknownSides(t *testing.T) {
	store := NewStore()
	ambulances := NewAmbulanceRepository(store)
	emergencies := NewEmergencyRepository(store)
	ctx := context.Background()

	ambulance, err := ambulances.Create(ctx, &models.Ambulance{Name: "Unit 1", Status: models.AmbulanceStatusAvailable})
	require.NoError(t, err)
	emergency, err := emergencies.Create(ctx, &models.Emergency{Type: models.EmergencyTypeOther, UserID: 1})
	require.NoError(t, err)

	_, err = emergencies.AssignAmbulance(ctx, 99, ambulance.ID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	_, err = emergencies.AssignAmbulance(ctx, emergency.ID, 99)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestEmergencyCreateStartsPending(t *testing.T) {
	store := NewStore()
	repo := NewEmergencyRepository(store)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Emergency{Type: models.EmergencyTypeInjury, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, models.EmergencyStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestEmergenciesListByUser(t *testing.T) {
	store := NewStore()
	repo := NewEmergencyRepository(store)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Emergency{Type: models.EmergencyTypeCardiac, UserID: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Emergency{Type: models.EmergencyTypeInjury, UserID: 2})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Emergency{Type: models.EmergencyTypeOther, UserID: 1})
	require.NoError(t, err)

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 1, mine[0].ID)
	assert.Equal(t, 3, mine[1].ID)
}

func TestActivitiesNewestFirst(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, Seed(ctx, store))

	repo := NewActivityRepository(store)
	recent, err := repo.Create(ctx, &models.Activity{
		Type:   models.ActivityEmergencyRequest,
		Status: "Pending",
		UserID: 1,
	})
	require.NoError(t, err)

	activities, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, recent.ID, activities[0].ID)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i].Date.After(activities[i-1].Date))
	}
}

func TestSeedData(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, Seed(ctx, store))

	user, err := NewUserRepository(store).GetByUsername(ctx, "john.doe")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	hospitals, err := NewHospitalRepository(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, hospitals, 2)

	ambulances, err := NewAmbulanceRepository(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, ambulances, 2)
	for _, a := range ambulances {
		assert.Equal(t, models.AmbulanceStatusAvailable, a.Status)
	}
}
