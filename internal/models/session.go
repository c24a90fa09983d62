package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Session is a scheduled teaching engagement with one teacher and a set of
// learners.
type Session struct {
	ID            string         `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Description   string         `db:"description" json:"description"`
	TeacherID     string         `db:"teacher_id" json:"teacherId"`
	TeacherName   string         `db:"teacher_name" json:"teacherName"`
	Learners      pq.StringArray `db:"learners" json:"learners"`
	ScheduledTime time.Time      `db:"scheduled_time" json:"scheduledTime"`
	Duration      int            `db:"duration" json:"duration"`
	RecordingLink *string        `db:"recording_link" json:"recordingLink,omitempty"`
	IsPublished   bool           `db:"is_published" json:"isPublished"`
	Status        string         `db:"status" json:"status"`
	Category      string         `db:"category" json:"category"`
	Skills        pq.StringArray `db:"skills" json:"skills"`
	Price         float64        `db:"price" json:"price"`
	MaxLearners   int            `db:"max_learners" json:"maxLearners"`
	SubSessions   SubSessionList `db:"sub_sessions" json:"sessions"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// SubSession is one meeting slot inside a session. The recurrence fields are
// stored verbatim and never interpreted.
type SubSession struct {
	Date             *time.Time `json:"date,omitempty"`
	StartTime        string     `json:"startTime"`
	EndTime          string     `json:"endTime"`
	MeetingLink      string     `json:"meetingLink"`
	Location         string     `json:"location"`
	IsRecurring      bool       `json:"isRecurring"`
	RecurringPattern string     `json:"recurringPattern"`
	RecurringEndDate *time.Time `json:"recurringEndDate,omitempty"`
}

// SubSessionList maps the embedded slot list onto a jsonb column.
type SubSessionList []SubSession

// Value implements driver.Valuer.
func (l SubSessionList) Value() (driver.Value, error) {
	if l == nil {
		l = SubSessionList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *SubSessionList) Scan(src interface{}) error {
	if src == nil {
		*l = SubSessionList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan sub sessions: unsupported type %T", src)
	}
	return json.Unmarshal(raw, l)
}

// SessionDetail is a session with its teacher and learner references resolved
// into full accounts.
type SessionDetail struct {
	Session
	Teacher      *User  `json:"teacher,omitempty"`
	LearnerUsers []User `json:"learnerUsers"`
}

// UserSessions groups a caller's sessions by role. A session where the caller
// is both teacher and learner appears only under Teaching.
type UserSessions struct {
	Teaching []Session `json:"teaching"`
	Learning []Session `json:"learning"`
}
