package models

import "time"

// Notification is a persisted in-app message for an account.
type Notification struct {
	ID        string    `db:"id" json:"id"`
	UserID    *string   `db:"user_id" json:"user,omitempty"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	Read      bool      `db:"read" json:"read"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
