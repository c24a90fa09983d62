package dto

import (
	"time"

	"github.com/skillswap/skillswap-api/internal/models"
)

// CreateSessionRequest defines the session creation payload. Optional fields
// default server-side; sub-session slots are stored verbatim.
type CreateSessionRequest struct {
	Title         string              `json:"title" validate:"required"`
	Description   string              `json:"description" validate:"required"`
	TeacherID     string              `json:"teacherId" validate:"required"`
	TeacherName   string              `json:"teacherName"`
	LearnerIDs    []string            `json:"learnerIds"`
	GMeetLink     *string             `json:"gmeetLink"`
	ScheduledTime time.Time           `json:"scheduledTime" validate:"required"`
	Duration      int                 `json:"duration" validate:"required,gt=0"`
	IsPublished   bool                `json:"isPublished"`
	Status        string              `json:"status"`
	Category      string              `json:"category"`
	Skills        []string            `json:"skills"`
	Price         float64             `json:"price"`
	MaxLearners   int                 `json:"maxLearners"`
	Sessions      []models.SubSession `json:"sessions"`
}

// SetGMeetLinkRequest overwrites a session's meeting link.
type SetGMeetLinkRequest struct {
	GMeetLink string `json:"gmeetLink" validate:"required"`
}

// TrackAttendanceRequest adds a learner to a session.
type TrackAttendanceRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// RecordSessionRequest captures a recording for a session.
type RecordSessionRequest struct {
	RecordingURL string `json:"recordingUrl" validate:"required,url"`
}
