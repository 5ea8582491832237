package store

import (
	"context"
	"errors"

	"github.com/seekline/jobtrack/internal/models"
	"gorm.io/gorm"
)

// Gorm is the database-backed RecordStore. It works against any dialect
// the database package can open; conflicting writes are serialized by the
// database's own row-level atomicity, no extra locking here.
type Gorm struct {
	db *gorm.DB
}

// NewGorm wraps an open GORM handle as a RecordStore.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) scoped(ctx context.Context, ownerID string) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Application{})
	if ownerID != "" {
		q = q.Where("owner_id = ?", ownerID)
	}
	return q
}

// CreateApplication persists a new application record, failing with
// ErrConflict when the id is already taken. The primary key backs up this
// pre-check; a lost race surfaces as a plain database error.
func (s *Gorm) CreateApplication(ctx context.Context, app *models.Application) error {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", app.ID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrConflict
	}
	return s.db.WithContext(ctx).Create(app).Error
}

// ListApplications returns records for the owner, optionally filtered by a
// case-insensitive status match. Ordered by creation time for stable output;
// ordering is not part of the contract.
func (s *Gorm) ListApplications(ctx context.Context, ownerID, status string) ([]models.Application, error) {
	q := s.scoped(ctx, ownerID)
	if status != "" {
		q = q.Where("LOWER(status) = LOWER(?)", status)
	}

	var apps []models.Application
	if err := q.Order("created_at").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// GetApplication fetches a record by id within the owner scope.
func (s *Gorm) GetApplication(ctx context.Context, ownerID, id string) (*models.Application, error) {
	var app models.Application
	err := s.scoped(ctx, ownerID).Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// ReplaceApplication substitutes the record body, keeping id, owner_id and
// created_at from the stored row.
func (s *Gorm) ReplaceApplication(ctx context.Context, ownerID, id string, app *models.Application) (*models.Application, error) {
	existing, err := s.GetApplication(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	app.ID = existing.ID
	app.OwnerID = existing.OwnerID
	app.CreatedAt = existing.CreatedAt

	if err := s.db.WithContext(ctx).Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// DeleteApplication removes a record by id within the owner scope. Deleting
// an already-deleted record yields ErrNotFound, same as a record that never
// existed.
func (s *Gorm) DeleteApplication(ctx context.Context, ownerID, id string) error {
	res := s.scoped(ctx, ownerID).Where("id = ?", id).Delete(&models.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus aggregates per-status counters over the owner's records.
// Aggregation happens in Go, not GROUP BY: counter keys must keep the stored
// casing exactly, and a case-insensitive column collation (MySQL's default
// utf8mb4 *_ci) would merge distinct casings into one group.
func (s *Gorm) CountByStatus(ctx context.Context, ownerID string) (int64, map[string]int64, error) {
	var statuses []string
	if err := s.scoped(ctx, ownerID).Pluck("status", &statuses).Error; err != nil {
		return 0, nil, err
	}

	counts := make(map[string]int64)
	for _, status := range statuses {
		counts[status]++
	}
	return int64(len(statuses)), counts, nil
}

// CreateUser inserts a new user, failing with ErrConflict when the username
// is already registered. The unique index backs up this pre-check; a lost
// race surfaces as a plain database error.
func (s *Gorm) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.GetUserByUsername(ctx, user.Username)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(user).Error
}

// GetUserByUsername fetches a user by exact username. The stored value is
// re-compared in Go so a case-insensitive column collation cannot resolve a
// wrong-cased name.
func (s *Gorm) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Username != username {
		return nil, ErrNotFound
	}
	return &user, nil
}

// GetUserByID fetches a user by id.
func (s *Gorm) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
