package memory

import (
	"context"
	"fmt"

	"swiftaid/internal/models"
	"swiftaid/internal/repositories/interfaces"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) interfaces.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	stored := cloneUser(user)
	stored.ID = s.userSeq
	s.users[stored.ID] = stored

	return cloneUser(stored), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, interfaces.ErrNotFound)
	}
	return cloneUser(user), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := 1; id <= s.userSeq; id++ {
		if user, ok := s.users[id]; ok && user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, interfaces.ErrNotFound)
}
