package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/seekline/jobtrack/internal/models"
	"github.com/seekline/jobtrack/internal/store"
	"github.com/seekline/jobtrack/internal/types"
)

// newApp builds a test application record.
func newApp(id, ownerID, company, status string) *models.Application {
	return &models.Application{
		ID:          id,
		Company:     company,
		Position:    "Engineer",
		DateApplied: types.NewFlexDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Status:      status,
		OwnerID:     ownerID,
	}
}

// runRecordStoreSuite exercises the RecordStore contract. Both
// implementations must pass it unchanged.
func runRecordStoreSuite(t *testing.T, rs store.RecordStore) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		app := newApp("app-1", "owner-a", "Acme", "Applied")
		if err := rs.CreateApplication(ctx, app); err != nil {
			t.Fatalf("Failed to create: %v", err)
		}

		got, err := rs.GetApplication(ctx, "owner-a", "app-1")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if got.Company != "Acme" || got.OwnerID != "owner-a" {
			t.Errorf("Unexpected record: %+v", got)
		}
	})

	t.Run("DuplicateIDConflict", func(t *testing.T) {
		dup := newApp("app-1", "owner-b", "Clone Corp", "Applied")
		if err := rs.CreateApplication(ctx, dup); err != store.ErrConflict {
			t.Errorf("Expected ErrConflict for taken id, got %v", err)
		}

		// the rejected duplicate left no second record behind
		apps, err := rs.ListApplications(ctx, "", "")
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(apps) != 1 {
			t.Errorf("Expected 1 record after rejected duplicate, got %d", len(apps))
		}
	})

	t.Run("GetForeignOwnerIndistinguishable", func(t *testing.T) {
		_, missingErr := rs.GetApplication(ctx, "owner-b", "no-such-id")
		_, foreignErr := rs.GetApplication(ctx, "owner-b", "app-1")
		if missingErr != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound for missing id, got %v", missingErr)
		}
		if foreignErr != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound for foreign record, got %v", foreignErr)
		}
	})

	t.Run("ReplacePreservesIDAndOwner", func(t *testing.T) {
		hostile := newApp("hijacked-id", "owner-b", "Evil Corp", "Offer")
		updated, err := rs.ReplaceApplication(ctx, "owner-a", "app-1", hostile)
		if err != nil {
			t.Fatalf("Failed to replace: %v", err)
		}
		if updated.ID != "app-1" {
			t.Errorf("Expected id app-1 after replace, got %s", updated.ID)
		}
		if updated.OwnerID != "owner-a" {
			t.Errorf("Expected owner owner-a after replace, got %s", updated.OwnerID)
		}
		if updated.Company != "Evil Corp" {
			t.Errorf("Expected body to be replaced, got %s", updated.Company)
		}
	})

	t.Run("ReplaceScopedByOwner", func(t *testing.T) {
		if _, err := rs.ReplaceApplication(ctx, "owner-b", "app-1", newApp("", "", "X", "Applied")); err != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound replacing foreign record, got %v", err)
		}
	})

	t.Run("ListStatusFilterCaseInsensitive", func(t *testing.T) {
		if err := rs.CreateApplication(ctx, newApp("app-2", "owner-a", "Beta", "applied")); err != nil {
			t.Fatalf("Failed to create: %v", err)
		}
		if err := rs.CreateApplication(ctx, newApp("app-3", "owner-a", "Gamma", "Rejected")); err != nil {
			t.Fatalf("Failed to create: %v", err)
		}

		upper, err := rs.ListApplications(ctx, "owner-a", "APPLIED")
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		lower, err := rs.ListApplications(ctx, "owner-a", "applied")
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		// app-1 holds "Offer" after the replace above
		if len(upper) != 1 || len(lower) != 1 {
			t.Fatalf("Expected 1 match for either casing, got %d and %d", len(upper), len(lower))
		}
		if upper[0].ID != lower[0].ID {
			t.Errorf("Filter casing changed the result set: %s vs %s", upper[0].ID, lower[0].ID)
		}
	})

	t.Run("ListScopedByOwner", func(t *testing.T) {
		if err := rs.CreateApplication(ctx, newApp("app-b1", "owner-b", "Delta", "Applied")); err != nil {
			t.Fatalf("Failed to create: %v", err)
		}
		apps, err := rs.ListApplications(ctx, "owner-b", "")
		if err != nil {
			t.Fatalf("Failed to list: %v", err)
		}
		if len(apps) != 1 || apps[0].ID != "app-b1" {
			t.Errorf("Expected only owner-b's record, got %+v", apps)
		}
	})

	t.Run("CountByStatusCaseExact", func(t *testing.T) {
		total, counts, err := rs.CountByStatus(ctx, "owner-a")
		if err != nil {
			t.Fatalf("Failed to count: %v", err)
		}
		if total != 3 {
			t.Errorf("Expected total 3, got %d", total)
		}
		// "applied" and "Offer" and "Rejected" keys keep stored casing
		if counts["applied"] != 1 || counts["Offer"] != 1 || counts["Rejected"] != 1 {
			t.Errorf("Unexpected counts: %v", counts)
		}
		if _, merged := counts["Applied"]; merged {
			t.Error("Counters must not fold case")
		}
	})

	t.Run("DeleteIdempotentNotFound", func(t *testing.T) {
		if err := rs.DeleteApplication(ctx, "owner-a", "app-3"); err != nil {
			t.Fatalf("Failed to delete: %v", err)
		}
		if _, err := rs.GetApplication(ctx, "owner-a", "app-3"); err != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := rs.DeleteApplication(ctx, "owner-a", "app-3"); err != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("DeleteScopedByOwner", func(t *testing.T) {
		if err := rs.DeleteApplication(ctx, "owner-a", "app-b1"); err != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound deleting foreign record, got %v", err)
		}
		if _, err := rs.GetApplication(ctx, "owner-b", "app-b1"); err != nil {
			t.Errorf("Foreign delete attempt must not remove the record: %v", err)
		}
	})

	t.Run("UnscopedAccess", func(t *testing.T) {
		apps, err := rs.ListApplications(ctx, "", "")
		if err != nil {
			t.Fatalf("Failed to list unscoped: %v", err)
		}
		if len(apps) != 3 {
			t.Errorf("Expected 3 records unscoped, got %d", len(apps))
		}
		if _, err := rs.GetApplication(ctx, "", "app-b1"); err != nil {
			t.Errorf("Unscoped get failed: %v", err)
		}
	})

	t.Run("UserConflict", func(t *testing.T) {
		alice := &models.User{ID: "u-1", Username: "alice", PasswordHash: "h1", Email: "alice@example.com"}
		if err := rs.CreateUser(ctx, alice); err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		dup := &models.User{ID: "u-2", Username: "alice", PasswordHash: "h2"}
		if err := rs.CreateUser(ctx, dup); err != store.ErrConflict {
			t.Errorf("Expected ErrConflict, got %v", err)
		}

		// original row untouched
		got, err := rs.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("Failed to get user: %v", err)
		}
		if got.ID != "u-1" || got.PasswordHash != "h1" || got.Email != "alice@example.com" {
			t.Errorf("Original user modified: %+v", got)
		}
	})

	t.Run("UsernameCaseSensitive", func(t *testing.T) {
		if _, err := rs.GetUserByUsername(ctx, "Alice"); err != store.ErrNotFound {
			t.Errorf("Expected case-sensitive username lookup, got %v", err)
		}

		// a differently-cased name is a distinct account, not a conflict
		cased := &models.User{ID: "u-3", Username: "Alice", PasswordHash: "h3"}
		if err := rs.CreateUser(ctx, cased); err != nil {
			t.Errorf("Failed to register differently-cased username: %v", err)
		}
		got, err := rs.GetUserByUsername(ctx, "Alice")
		if err != nil {
			t.Fatalf("Failed to get user: %v", err)
		}
		if got.ID != "u-3" {
			t.Errorf("Lookup resolved the wrong account: %+v", got)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := rs.GetUserByID(ctx, "u-1")
		if err != nil {
			t.Fatalf("Failed to get user by id: %v", err)
		}
		if got.Username != "alice" {
			t.Errorf("Unexpected user: %+v", got)
		}
		if _, err := rs.GetUserByID(ctx, "u-404"); err != store.ErrNotFound {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runRecordStoreSuite(t, store.NewMemory())
}
