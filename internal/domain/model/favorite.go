//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Favorite marks a guide saved by a user. One row per (user, guide) pair.
type Favorite struct {
	ID        string    `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	GuideID   string    `json:"guide_id"   db:"guide_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ToggleResult reports the outcome of a favorite toggle.
type ToggleResult struct {
	Added   bool `json:"added"`
	Removed bool `json:"removed"`
}
