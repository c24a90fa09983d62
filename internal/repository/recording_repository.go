package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/skillswap/skillswap-api/internal/models"
)

const recordingColumns = `id, session_id, recorded_url, created_at, updated_at`

// RecordingRepository provides database access for session recordings.
type RecordingRepository struct {
	db *sqlx.DB
}

// NewRecordingRepository creates a new instance of RecordingRepository.
func NewRecordingRepository(db *sqlx.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

// Create inserts a new recording. No session-existence check is performed.
func (r *RecordingRepository) Create(ctx context.Context, recording *models.Recording) error {
	if recording.ID == "" {
		recording.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if recording.CreatedAt.IsZero() {
		recording.CreatedAt = now
	}
	recording.UpdatedAt = now

	const query = `INSERT INTO recordings (id, session_id, recorded_url, created_at, updated_at)
VALUES (:id, :session_id, :recorded_url, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, recording); err != nil {
		return fmt.Errorf("create recording: %w", err)
	}
	return nil
}

// ListBySession returns all recordings captured for a session.
func (r *RecordingRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Recording, error) {
	query := fmt.Sprintf(`SELECT %s FROM recordings WHERE session_id = $1 ORDER BY created_at DESC`, recordingColumns)
	var recordings []models.Recording
	if err := r.db.SelectContext(ctx, &recordings, query, sessionID); err != nil {
		return nil, fmt.Errorf("list recordings by session: %w", err)
	}
	return recordings, nil
}

// ListByUser returns recordings of sessions where the account is the teacher
// or one of the learners.
func (r *RecordingRepository) ListByUser(ctx context.Context, userID string) ([]models.Recording, error) {
	const query = `SELECT r.id, r.session_id, r.recorded_url, r.created_at, r.updated_at FROM recordings r
JOIN sessions s ON s.id = r.session_id
WHERE s.teacher_id = $1 OR $1 = ANY(s.learners)
ORDER BY r.created_at DESC`
	var recordings []models.Recording
	if err := r.db.SelectContext(ctx, &recordings, query, userID); err != nil {
		return nil, fmt.Errorf("list recordings by user: %w", err)
	}
	return recordings, nil
}
