package repository

import (
	"context"
	"sync"

	"teampulse-backend/internal/models"
)

// UserStore resolves users. The user set is reference data: it is seeded
// once at startup and never mutated afterwards.
type UserStore interface {
	// FindByEmail matches case-sensitively; returns (nil, nil) when no
	// user has that email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// TeamMembers returns the employees whose manager_id equals managerID.
	TeamMembers(ctx context.Context, managerID string) ([]models.User, error)
}

// MemoryUserStore keeps the user set in process memory.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserStore(users []models.User) *MemoryUserStore {
	return &MemoryUserStore{users: users}
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) TeamMembers(ctx context.Context, managerID string) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team := []models.User{}
	for _, user := range s.users {
		if user.Role == models.RoleEmployee && user.ManagerID == managerID {
			team = append(team, user)
		}
	}
	return team, nil
}
