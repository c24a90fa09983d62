package models

import (
	"time"

	"github.com/lib/pq"
)

// Skill is a catalog entry accounts associate with as teacher or learner.
// The teaching and learning sets hold account IDs.
type Skill struct {
	ID            string         `db:"id" json:"id"`
	SkillName     string         `db:"skill_name" json:"skillName"`
	Description   *string        `db:"description" json:"description,omitempty"`
	UsersTeaching pq.StringArray `db:"users_teaching" json:"usersTeaching"`
	UsersLearning pq.StringArray `db:"users_learning" json:"usersLearning"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
}
