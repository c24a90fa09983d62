package models

import (
	"time"

	"github.com/lib/pq"
)

// User represents a registered account stored in the users table. The
// password hash is never serialised into API responses.
type User struct {
	ID                  string         `db:"id" json:"id"`
	Name                string         `db:"name" json:"name"`
	Email               string         `db:"email" json:"email"`
	PasswordHash        string         `db:"password_hash" json:"-"`
	Contact             *string        `db:"contact" json:"contact,omitempty"`
	College             *string        `db:"college" json:"college,omitempty"`
	ProfessionalDetails *string        `db:"professional_details" json:"professionalDetails,omitempty"`
	SkillsTeaching      pq.StringArray `db:"skills_teaching" json:"skillsTeaching"`
	SkillsLearning      pq.StringArray `db:"skills_learning" json:"skillsLearning"`
	CurrentSessions     pq.StringArray `db:"current_sessions" json:"currentSessions"`
	Bookmarks           pq.StringArray `db:"bookmarks" json:"bookmarks"`
	CreatedAt           time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updatedAt"`
}
