package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/seekline/jobtrack/internal/models"
)

// Memory is the in-process RecordStore: a mutex-guarded slice with no
// persistence across restarts. It keeps insertion order on List, matching
// the reference behavior of the in-memory variant.
type Memory struct {
	mu    sync.RWMutex
	apps  []models.Application
	users []models.User
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// CreateApplication appends a new record, failing with ErrConflict when the
// id is already taken by any owner.
func (s *Memory) CreateApplication(_ context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.apps {
		if existing.ID == app.ID {
			return ErrConflict
		}
	}

	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	s.apps = append(s.apps, *app)
	return nil
}

// ListApplications returns matching records in insertion order.
func (s *Memory) ListApplications(_ context.Context, ownerID, status string) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Application, 0, len(s.apps))
	for _, app := range s.apps {
		if ownerID != "" && app.OwnerID != ownerID {
			continue
		}
		if status != "" && !strings.EqualFold(app.Status, status) {
			continue
		}
		result = append(result, app)
	}
	return result, nil
}

// GetApplication fetches a record by id within the owner scope.
func (s *Memory) GetApplication(_ context.Context, ownerID, id string) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(ownerID, id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	app := s.apps[idx]
	return &app, nil
}

// ReplaceApplication substitutes the record body, keeping id, owner_id and
// created_at from the stored record.
func (s *Memory) ReplaceApplication(_ context.Context, ownerID, id string, app *models.Application) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	app.ID = s.apps[idx].ID
	app.OwnerID = s.apps[idx].OwnerID
	app.CreatedAt = s.apps[idx].CreatedAt
	app.UpdatedAt = time.Now().UTC()
	s.apps[idx] = *app
	return app, nil
}

// DeleteApplication removes a record by id within the owner scope.
func (s *Memory) DeleteApplication(_ context.Context, ownerID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(ownerID, id)
	if idx < 0 {
		return ErrNotFound
	}
	s.apps = append(s.apps[:idx], s.apps[idx+1:]...)
	return nil
}

// CountByStatus aggregates per-status counters keyed by the exact stored
// status string.
func (s *Memory) CountByStatus(_ context.Context, ownerID string) (int64, map[string]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	counts := make(map[string]int64)
	for _, app := range s.apps {
		if ownerID != "" && app.OwnerID != ownerID {
			continue
		}
		counts[app.Status]++
		total++
	}
	return total, counts, nil
}

// CreateUser appends a new user, failing with ErrConflict on a duplicate
// username. Usernames compare case-sensitively.
func (s *Memory) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrConflict
		}
	}
	user.CreatedAt = time.Now().UTC()
	s.users = append(s.users, *user)
	return nil
}

// GetUserByUsername fetches a user by exact username.
func (s *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// GetUserByID fetches a user by id.
func (s *Memory) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// indexOf finds a record by id within the owner scope. Callers hold the lock.
func (s *Memory) indexOf(ownerID, id string) int {
	for i, app := range s.apps {
		if app.ID != id {
			continue
		}
		if ownerID != "" && app.OwnerID != ownerID {
			// owned by someone else: indistinguishable from absent
			continue
		}
		return i
	}
	return -1
}
