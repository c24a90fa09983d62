package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/skillswap/skillswap-api/internal/models"
)

const sessionColumns = `id, title, description, teacher_id, teacher_name, learners, scheduled_time, duration, recording_link, is_published, status, category, skills, price, max_learners, sub_sessions, created_at, updated_at`

// SessionRepository provides database access for teaching sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session.
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.Learners == nil {
		session.Learners = pq.StringArray{}
	}
	if session.Skills == nil {
		session.Skills = pq.StringArray{}
	}
	if session.SubSessions == nil {
		session.SubSessions = models.SubSessionList{}
	}

	const query = `INSERT INTO sessions (id, title, description, teacher_id, teacher_name, learners, scheduled_time, duration, recording_link, is_published, status, category, skills, price, max_learners, sub_sessions, created_at, updated_at)
VALUES (:id, :title, :description, :teacher_id, :teacher_name, :learners, :scheduled_time, :duration, :recording_link, :is_published, :status, :category, :skills, :price, :max_learners, :sub_sessions, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// FindByID returns a session by identifier.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE id = $1 LIMIT 1`, sessionColumns)
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find session by id: %w", err)
	}
	return &session, nil
}

// ListByTeacher returns sessions taught by the account, newest first.
func (r *SessionRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE teacher_id = $1 ORDER BY created_at DESC`, sessionColumns)
	var sessions []models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, teacherID); err != nil {
		return nil, fmt.Errorf("list sessions by teacher: %w", err)
	}
	return sessions, nil
}

// ListByLearner returns sessions the account attends as a learner, excluding
// sessions it also teaches, newest first.
func (r *SessionRepository) ListByLearner(ctx context.Context, userID string) ([]models.Session, error) {
	query := fmt.Sprintf(`SELECT %s FROM sessions WHERE $1 = ANY(learners) AND teacher_id <> $1 ORDER BY created_at DESC`, sessionColumns)
	var sessions []models.Session
	if err := r.db.SelectContext(ctx, &sessions, query, userID); err != nil {
		return nil, fmt.Errorf("list sessions by learner: %w", err)
	}
	return sessions, nil
}

// SetRecordingLink overwrites the session's meeting link and returns the
// stored record.
func (r *SessionRepository) SetRecordingLink(ctx context.Context, id, link string) (*models.Session, error) {
	query := fmt.Sprintf(`UPDATE sessions SET recording_link = $2, updated_at = $3 WHERE id = $1 RETURNING %s`, sessionColumns)
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id, link, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("set recording link: %w", err)
	}
	return &session, nil
}

// AddLearner atomically adds an account to the learner set. Duplicate adds
// leave the set unchanged.
func (r *SessionRepository) AddLearner(ctx context.Context, id, userID string) (*models.Session, error) {
	query := fmt.Sprintf(`UPDATE sessions
SET learners = CASE WHEN $2 = ANY(learners) THEN learners ELSE array_append(learners, $2) END,
    updated_at = $3
WHERE id = $1
RETURNING %s`, sessionColumns)
	var session models.Session
	if err := r.db.GetContext(ctx, &session, query, id, userID, time.Now().UTC()); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("add learner to session: %w", err)
	}
	return &session, nil
}

// FindManyUsers returns the accounts for a list of ids, used when populating
// session details.
func (r *SessionRepository) FindManyUsers(ctx context.Context, ids []string) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = ANY($1)`, userColumns)
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, pq.StringArray(ids)); err != nil {
		return nil, fmt.Errorf("find session users: %w", err)
	}
	return users, nil
}
