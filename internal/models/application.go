package models

import (
	"time"

	"github.com/seekline/jobtrack/internal/types"
)

// Application represents a single job application record.
//
// ID and OwnerID are immutable once set: updates replace every other field
// but always re-attach these two, regardless of what the request carried.
type Application struct {
	ID          string         `gorm:"type:char(36);primaryKey" json:"id"`
	Company     string         `gorm:"size:255;not null" json:"company"`
	Position    string         `gorm:"size:255;not null" json:"position"`
	DateApplied types.FlexDate `gorm:"not null" json:"date_applied"`
	Status      string         `gorm:"size:255;not null;index" json:"status"`
	Notes       string         `gorm:"type:text" json:"notes,omitempty"`
	OwnerID     string         `gorm:"type:char(36);index" json:"owner_id,omitempty"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

// TableName overrides the table name for Application
func (Application) TableName() string {
	return "applications"
}
