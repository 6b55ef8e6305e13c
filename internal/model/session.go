package model

import "time"

// Session maps an opaque browser session id to the bearer token issued by the auth service.
type Session struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Token     string `gorm:"not null" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
