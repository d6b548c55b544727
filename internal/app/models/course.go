package models

import "time"

// Course represents a course in the catalog. Identity is the UUID id; this
// service is the only component that originates ids.
type Course struct {
	ID          string      `json:"id" db:"id"`
	Code        string      `json:"code,omitempty" db:"code"`
	Title       string      `json:"title,omitempty" db:"title"`
	Description Description `json:"description" db:"description"`
	IsActive    bool        `json:"is_active" db:"is_active"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty" db:"updated_at"`
}
