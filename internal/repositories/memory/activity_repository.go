package memory

import (
	"context"
	"sort"
	"time"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

type activityRepository struct {
	store *Store
}

func NewActivityRepository(store *Store) interfaces.ActivityRepository {
	return &activityRepository{store: store}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) (*models.Activity, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.activitySeq++
	stored := cloneActivity(activity)
	stored.ID = s.activitySeq
	if stored.Date.IsZero() {
		stored.Date = time.Now()
	}
	s.activities[stored.ID] = stored

	return cloneActivity(stored), nil
}

func (r *activityRepository) ListByUser(ctx context.Context, userID int) ([]*models.Activity, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var activities []*models.Activity
	for id := 1; id <= s.activitySeq; id++ {
		if activity, ok := s.activities[id]; ok && activity.UserID == userID {
			activities = append(activities, cloneActivity(activity))
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	return activities, nil
}
