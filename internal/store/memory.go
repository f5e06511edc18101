package store

import (
	"sync"
	"time"

	"github.com/isdelr/identity-be/internal/models"
)

// MemoryStore is the reference in-process UserStore: an append-only slice
// scanned linearly, guarded by a single mutex. Production deployments
// substitute a persistent implementation without touching the service layer.
type MemoryStore struct {
	mu     sync.Mutex
	users  []models.User
	nextID int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// FindByEmail looks up a user by exact email match.
func (s *MemoryStore) FindByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// FindByID looks up a user by ID.
func (s *MemoryStore) FindByID(id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Insert creates a new active user with the next sequential ID. The
// uniqueness check and the append happen under one lock, so two concurrent
// inserts with the same email cannot both succeed.
func (s *MemoryStore) Insert(name, email, passwordHash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           s.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Status:       models.StatusActive,
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, user)
	s.nextID++

	return user, nil
}

// UpdateStatus atomically sets the status of the user with the given ID.
func (s *MemoryStore) UpdateStatus(id int64, status models.Status) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			return s.users[i], nil
		}
	}
	return models.User{}, ErrNotFound
}

// Count returns the number of stored users.
func (s *MemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
