package models

import "time"

// User represents a registered account. The password hash never leaves the
// server: it is excluded from JSON and only compared through bcrypt.
type User struct {
	ID           string    `gorm:"type:char(36);primaryKey" json:"id"`
	Username     string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`
	Email        string    `gorm:"size:255" json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
