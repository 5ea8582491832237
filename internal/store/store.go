// Package store is the persistence boundary of the tracker. Service and
// handler code only sees the RecordStore interface, so the backing storage
// is swappable between the GORM implementation and the in-process memory
// implementation without touching any business logic.
package store

import (
	"context"
	"errors"

	"github.com/seekline/jobtrack/internal/models"
)

var (
	// ErrNotFound covers both a record that does not exist and a record
	// owned by someone else. Callers must not be able to tell these apart.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique constraint would be violated:
	// a duplicate username, or a duplicate application id.
	ErrConflict = errors.New("record already exists")
)

// RecordStore persists application and user records.
//
// Every application operation takes an ownerID. A non-empty ownerID scopes
// the operation to that user's records; an empty ownerID disables scoping
// (the unauthenticated variant). Lookups are exact-match on id.
type RecordStore interface {
	// CreateApplication persists a new record. Ids are unique across the
	// whole store regardless of owner; a taken id yields ErrConflict.
	CreateApplication(ctx context.Context, app *models.Application) error

	// ListApplications returns all matching records. A non-empty status
	// filters by case-insensitive equality on the status label.
	ListApplications(ctx context.Context, ownerID, status string) ([]models.Application, error)

	GetApplication(ctx context.Context, ownerID, id string) (*models.Application, error)

	// ReplaceApplication substitutes the entire record body, re-attaching
	// the immutable id and owner_id from the stored record.
	ReplaceApplication(ctx context.Context, ownerID, id string, app *models.Application) (*models.Application, error)

	DeleteApplication(ctx context.Context, ownerID, id string) error

	// CountByStatus aggregates per-status counters keyed by the exact
	// stored status string. No case folding, in contrast to the List
	// filter: "Applied" and "applied" stay separate keys.
	CountByStatus(ctx context.Context, ownerID string) (int64, map[string]int64, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
