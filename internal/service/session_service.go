package service

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/mailer"
)

type sessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error)
	ListByLearner(ctx context.Context, userID string) ([]models.Session, error)
	SetRecordingLink(ctx context.Context, id, link string) (*models.Session, error)
	AddLearner(ctx context.Context, id, userID string) (*models.Session, error)
	FindManyUsers(ctx context.Context, ids []string) ([]models.User, error)
}

type sessionRecordingRepository interface {
	Create(ctx context.Context, recording *models.Recording) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Recording, error)
}

// SessionService handles the session lifecycle.
type SessionService struct {
	repo       sessionRepository
	recordings sessionRecordingRepository
	mail       mailer.Mailer
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewSessionService constructs the service. mail may be nil, in which case
// link notifications are skipped.
func NewSessionService(repo sessionRepository, recordings sessionRecordingRepository, mail mailer.Mailer, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{repo: repo, recordings: recordings, mail: mail, validator: validate, logger: logger}
}

// Create stores a new session. Optional fields default server-side; the
// sub-session slots are stored verbatim, never validated against each other.
func (s *SessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}

	status := req.Status
	if status == "" {
		status = "upcoming"
	}
	category := req.Category
	if category == "" {
		category = "general"
	}
	maxLearners := req.MaxLearners
	if maxLearners <= 0 {
		maxLearners = 1
	}

	session := &models.Session{
		Title:         req.Title,
		Description:   req.Description,
		TeacherID:     req.TeacherID,
		TeacherName:   req.TeacherName,
		Learners:      pq.StringArray(req.LearnerIDs),
		ScheduledTime: req.ScheduledTime,
		Duration:      req.Duration,
		RecordingLink: req.GMeetLink,
		IsPublished:   req.IsPublished,
		Status:        status,
		Category:      category,
		Skills:        pq.StringArray(req.Skills),
		Price:         req.Price,
		MaxLearners:   maxLearners,
		SubSessions:   models.SubSessionList(req.Sessions),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}
	return session, nil
}

// SetGMeetLink overwrites the session's meeting link, then notifies every
// current learner by email. Sends run concurrently and the call waits for all
// of them, but failures are only logged: the link change never rolls back.
func (s *SessionService) SetGMeetLink(ctx context.Context, sessionID string, req dto.SetGMeetLinkRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "gmeetLink is required")
	}

	session, err := s.repo.SetRecordingLink(ctx, sessionID, req.GMeetLink)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to set gmeet link")
	}

	if s.mail != nil && len(session.Learners) > 0 {
		learners, err := s.repo.FindManyUsers(ctx, session.Learners)
		if err != nil {
			s.logger.Warn("failed to load learners for link notification", zap.Error(err))
			return session, nil
		}

		subject, body := mailer.MeetLinkBody(session.Title, req.GMeetLink)
		var wg sync.WaitGroup
		for _, learner := range learners {
			if learner.Email == "" {
				continue
			}
			wg.Add(1)
			go func(to string) {
				defer wg.Done()
				if err := s.mail.Send(to, subject, body); err != nil {
					s.logger.Warn("gmeet link email failed", zap.String("to", to), zap.Error(err))
				}
			}(learner.Email)
		}
		wg.Wait()
	}

	return session, nil
}

// MySessions returns the caller's sessions grouped by role. A session where
// the caller teaches never appears under learning.
func (s *SessionService) MySessions(ctx context.Context, userID string) (*models.UserSessions, error) {
	teaching, err := s.repo.ListByTeacher(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teaching sessions")
	}
	learning, err := s.repo.ListByLearner(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list learning sessions")
	}
	if teaching == nil {
		teaching = []models.Session{}
	}
	if learning == nil {
		learning = []models.Session{}
	}
	return &models.UserSessions{Teaching: teaching, Learning: learning}, nil
}

// Detail returns a session with teacher and learners resolved into accounts.
func (s *SessionService) Detail(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch session")
	}

	detail := &models.SessionDetail{Session: *session, LearnerUsers: []models.User{}}

	ids := append([]string{session.TeacherID}, session.Learners...)
	users, err := s.repo.FindManyUsers(ctx, ids)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to populate session users")
	}
	for i := range users {
		if users[i].ID == session.TeacherID {
			teacher := users[i]
			detail.Teacher = &teacher
			continue
		}
		detail.LearnerUsers = append(detail.LearnerUsers, users[i])
	}

	return detail, nil
}

// TrackAttendance idempotently adds a learner to the session's learner set.
func (s *SessionService) TrackAttendance(ctx context.Context, sessionID string, req dto.TrackAttendanceRequest) (*models.Session, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "userId is required")
	}

	session, err := s.repo.AddLearner(ctx, sessionID, req.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to track attendance")
	}
	return session, nil
}

// RecordSession stores a recording reference for the session. No ownership or
// session-existence check is performed.
func (s *SessionService) RecordSession(ctx context.Context, sessionID string, req dto.RecordSessionRequest) (*models.Recording, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "recordingUrl is required")
	}

	recording := &models.Recording{SessionID: sessionID, RecordedURL: req.RecordingURL}
	if err := s.recordings.Create(ctx, recording); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save recording")
	}
	return recording, nil
}

// SessionRecordings returns all recordings captured for a session.
func (s *SessionService) SessionRecordings(ctx context.Context, sessionID string) ([]models.Recording, error) {
	recordings, err := s.recordings.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch recordings")
	}
	if recordings == nil {
		recordings = []models.Recording{}
	}
	return recordings, nil
}
