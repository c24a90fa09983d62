package models

import "time"

// Recording is a stored reference to a captured session video, independent of
// the session's own recording link. UpdatedAt is refreshed on every save.
type Recording struct {
	ID          string    `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"sessionId"`
	RecordedURL string    `db:"recorded_url" json:"recordedUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
