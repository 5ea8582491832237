package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/seekline/jobtrack/internal/models"
	"github.com/seekline/jobtrack/internal/store"
)

// CreateApplication assigns an id when the caller omitted one, attaches the
// acting user as owner and persists the record. A client-supplied id is
// preserved as-is.
func CreateApplication(ctx context.Context, rs store.RecordStore, ownerID string, app *models.Application) (*models.Application, error) {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	app.OwnerID = ownerID

	if err := rs.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListApplications returns the acting user's records, optionally filtered by
// a case-insensitive status match.
func ListApplications(ctx context.Context, rs store.RecordStore, ownerID, status string) ([]models.Application, error) {
	return rs.ListApplications(ctx, ownerID, status)
}

// GetApplication fetches one record. A record owned by another user reports
// store.ErrNotFound, exactly like a record that does not exist.
func GetApplication(ctx context.Context, rs store.RecordStore, ownerID, id string) (*models.Application, error) {
	return rs.GetApplication(ctx, ownerID, id)
}

// UpdateApplication replaces the record body. The stored id and owner_id win
// over whatever the payload carried, so neither can be hijacked.
func UpdateApplication(ctx context.Context, rs store.RecordStore, ownerID, id string, app *models.Application) (*models.Application, error) {
	return rs.ReplaceApplication(ctx, ownerID, id, app)
}

// DeleteApplication removes one record under the same ownership rule as Get.
// A second delete reports store.ErrNotFound, not a distinct error.
func DeleteApplication(ctx context.Context, rs store.RecordStore, ownerID, id string) error {
	return rs.DeleteApplication(ctx, ownerID, id)
}
