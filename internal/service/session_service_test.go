package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/mailer"
)

type mockSessionRepo struct {
	created      *models.Session
	createErr    error
	byID         *models.Session
	findByIDErr  error
	teaching     []models.Session
	learning     []models.Session
	linkResult   *models.Session
	linkErr      error
	addResult    *models.Session
	addErr       error
	users       []models.User
	usersErr    error
	lastUserIDs []string
	linkArgLink string
}

func (m *mockSessionRepo) Create(ctx context.Context, session *models.Session) error {
	if m.createErr != nil {
		return m.createErr
	}
	if session.ID == "" {
		session.ID = "sess-1"
	}
	m.created = session
	return nil
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id string) (*models.Session, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	return m.byID, nil
}

func (m *mockSessionRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Session, error) {
	return m.teaching, nil
}

func (m *mockSessionRepo) ListByLearner(ctx context.Context, userID string) ([]models.Session, error) {
	return m.learning, nil
}

func (m *mockSessionRepo) SetRecordingLink(ctx context.Context, id, link string) (*models.Session, error) {
	if m.linkErr != nil {
		return nil, m.linkErr
	}
	m.linkArgLink = link
	return m.linkResult, nil
}

func (m *mockSessionRepo) AddLearner(ctx context.Context, id, userID string) (*models.Session, error) {
	if m.addErr != nil {
		return nil, m.addErr
	}
	return m.addResult, nil
}

func (m *mockSessionRepo) FindManyUsers(ctx context.Context, ids []string) ([]models.User, error) {
	if m.usersErr != nil {
		return nil, m.usersErr
	}
	m.lastUserIDs = ids
	return m.users, nil
}

type mockSessionRecordings struct {
	created    *models.Recording
	createErr  error
	recordings []models.Recording
	listErr    error
}

func (m *mockSessionRecordings) Create(ctx context.Context, recording *models.Recording) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = recording
	return nil
}

func (m *mockSessionRecordings) ListBySession(ctx context.Context, sessionID string) ([]models.Recording, error) {
	return m.recordings, m.listErr
}

type mockMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return m.err
}

func (m *mockMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]string(nil), m.sent...)
	sort.Strings(out)
	return out
}

func newSessionService(repo *mockSessionRepo, recordings *mockSessionRecordings, mail *mockMailer) *SessionService {
	if recordings == nil {
		recordings = &mockSessionRecordings{}
	}
	var m mailer.Mailer
	if mail != nil {
		m = mail
	}
	return NewSessionService(repo, recordings, m, validator.New(), zap.NewNop())
}

func TestSessionCreateDefaults(t *testing.T) {
	repo := &mockSessionRepo{}
	svc := newSessionService(repo, nil, nil)

	session, err := svc.Create(context.Background(), dto.CreateSessionRequest{
		Title:         "Intro to Go",
		Description:   "Basics",
		TeacherID:     "u1",
		ScheduledTime: time.Now(),
		Duration:      60,
	})
	require.NoError(t, err)
	assert.Equal(t, "upcoming", session.Status)
	assert.Equal(t, "general", session.Category)
	assert.Equal(t, 1, session.MaxLearners)
}

func TestSessionCreateMissingFields(t *testing.T) {
	svc := newSessionService(&mockSessionRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSessionRequest{Title: "Intro to Go"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestSessionSetGMeetLinkNotifiesLearners(t *testing.T) {
	repo := &mockSessionRepo{
		linkResult: &models.Session{ID: "sess-1", Title: "Intro to Go", Learners: []string{"u2", "u3"}},
		users: []models.User{
			{ID: "u2", Email: "u2@example.com"},
			{ID: "u3", Email: "u3@example.com"},
		},
	}
	mail := &mockMailer{}
	svc := newSessionService(repo, nil, mail)

	session, err := svc.SetGMeetLink(context.Background(), "sess-1", dto.SetGMeetLinkRequest{GMeetLink: "https://meet.google.com/abc"})
	require.NoError(t, err)
	assert.Equal(t, "https://meet.google.com/abc", repo.linkArgLink)
	assert.Equal(t, []string{"u2", "u3"}, repo.lastUserIDs)
	assert.Equal(t, []string{"u2@example.com", "u3@example.com"}, mail.recipients())
	assert.Equal(t, "sess-1", session.ID)
}

func TestSessionSetGMeetLinkMailFailureSwallowed(t *testing.T) {
	repo := &mockSessionRepo{
		linkResult: &models.Session{ID: "sess-1", Title: "Intro to Go", Learners: []string{"u2"}},
		users:      []models.User{{ID: "u2", Email: "u2@example.com"}},
	}
	mail := &mockMailer{err: errors.New("smtp down")}
	svc := newSessionService(repo, nil, mail)

	session, err := svc.SetGMeetLink(context.Background(), "sess-1", dto.SetGMeetLinkRequest{GMeetLink: "https://meet.google.com/abc"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", session.ID)
	assert.Len(t, mail.recipients(), 1)
}

func TestSessionSetGMeetLinkNotFound(t *testing.T) {
	svc := newSessionService(&mockSessionRepo{linkErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.SetGMeetLink(context.Background(), "missing", dto.SetGMeetLinkRequest{GMeetLink: "https://meet.google.com/abc"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSessionMySessionsGroupsByRole(t *testing.T) {
	repo := &mockSessionRepo{
		teaching: []models.Session{{ID: "sess-1", TeacherID: "u1"}},
		learning: []models.Session{{ID: "sess-2", TeacherID: "u9"}},
	}
	svc := newSessionService(repo, nil, nil)

	sessions, err := svc.MySessions(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, sessions.Teaching, 1)
	require.Len(t, sessions.Learning, 1)
	assert.Equal(t, "sess-1", sessions.Teaching[0].ID)
}

func TestSessionMySessionsEmpty(t *testing.T) {
	svc := newSessionService(&mockSessionRepo{}, nil, nil)

	sessions, err := svc.MySessions(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, sessions.Teaching)
	assert.NotNil(t, sessions.Learning)
	assert.Empty(t, sessions.Teaching)
}

func TestSessionDetailSplitsTeacherAndLearners(t *testing.T) {
	repo := &mockSessionRepo{
		byID: &models.Session{ID: "sess-1", TeacherID: "u1", Learners: []string{"u2"}},
		users: []models.User{
			{ID: "u1", Name: "Asha"},
			{ID: "u2", Name: "Bo"},
		},
	}
	svc := newSessionService(repo, nil, nil)

	detail, err := svc.Detail(context.Background(), "sess-1")
	require.NoError(t, err)
	require.NotNil(t, detail.Teacher)
	assert.Equal(t, "u1", detail.Teacher.ID)
	require.Len(t, detail.LearnerUsers, 1)
	assert.Equal(t, "u2", detail.LearnerUsers[0].ID)
}

func TestSessionTrackAttendanceNotFound(t *testing.T) {
	svc := newSessionService(&mockSessionRepo{addErr: sql.ErrNoRows}, nil, nil)

	_, err := svc.TrackAttendance(context.Background(), "missing", dto.TrackAttendanceRequest{UserID: "u2"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestSessionRecord(t *testing.T) {
	recordings := &mockSessionRecordings{}
	svc := newSessionService(&mockSessionRepo{}, recordings, nil)

	recording, err := svc.RecordSession(context.Background(), "sess-1", dto.RecordSessionRequest{RecordingURL: "https://cdn.example.com/rec.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "sess-1", recording.SessionID)
	require.NotNil(t, recordings.created)
}

func TestSessionRecordingsEmpty(t *testing.T) {
	svc := newSessionService(&mockSessionRepo{}, &mockSessionRecordings{}, nil)

	recordings, err := svc.SessionRecordings(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.NotNil(t, recordings)
	assert.Empty(t, recordings)
}
