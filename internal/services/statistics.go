package services

import (
	"context"

	"github.com/seekline/jobtrack/internal/store"
)

// Statistics is the count-by-status summary for one user's records.
type Statistics struct {
	TotalApplications int64            `json:"total_applications"`
	StatusCounts      map[string]int64 `json:"status_counts"`
}

// Summarize aggregates per-status counters over the acting user's records.
// Counter keys are the exact stored status strings: "Applied" and "applied"
// stay separate, unlike the List filter which folds case.
func Summarize(ctx context.Context, rs store.RecordStore, ownerID string) (*Statistics, error) {
	total, counts, err := rs.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Statistics{TotalApplications: total, StatusCounts: counts}, nil
}
