package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/mailer"
)

type mockNotificationRepo struct {
	created   *models.Notification
	createErr error
	list      []models.Notification
	listErr   error
}

func (m *mockNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = notification
	return nil
}

func (m *mockNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return m.list, m.listErr
}

func newNotificationService(repo *mockNotificationRepo, mail *mockMailer) *NotificationService {
	var m mailer.Mailer
	if mail != nil {
		m = mail
	}
	return NewNotificationService(repo, m, validator.New(), zap.NewNop())
}

func TestNotificationSendEmailOnly(t *testing.T) {
	repo := &mockNotificationRepo{}
	mail := &mockMailer{}
	svc := newNotificationService(repo, mail)

	err := svc.Send(context.Background(), dto.SendNotificationRequest{Email: "asha@example.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{"asha@example.com"}, mail.recipients())
	assert.Nil(t, repo.created)
}

func TestNotificationSendPersistsForUser(t *testing.T) {
	repo := &mockNotificationRepo{}
	mail := &mockMailer{}
	svc := newNotificationService(repo, mail)

	err := svc.Send(context.Background(), dto.SendNotificationRequest{UserID: "u1", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.UserID)
	assert.Equal(t, "u1", *repo.created.UserID)
	assert.Empty(t, mail.recipients())
}

func TestNotificationSendBothTargets(t *testing.T) {
	repo := &mockNotificationRepo{}
	mail := &mockMailer{}
	svc := newNotificationService(repo, mail)

	err := svc.Send(context.Background(), dto.SendNotificationRequest{UserID: "u1", Email: "asha@example.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	assert.NotNil(t, repo.created)
	assert.Len(t, mail.recipients(), 1)
}

func TestNotificationSendEmailFailureSwallowed(t *testing.T) {
	repo := &mockNotificationRepo{}
	mail := &mockMailer{err: errors.New("smtp down")}
	svc := newNotificationService(repo, mail)

	err := svc.Send(context.Background(), dto.SendNotificationRequest{Email: "asha@example.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
}

func TestNotificationSendMissingSubject(t *testing.T) {
	svc := newNotificationService(&mockNotificationRepo{}, nil)

	err := svc.Send(context.Background(), dto.SendNotificationRequest{Email: "asha@example.com", Message: "Hello"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestNotificationListForUserEmpty(t *testing.T) {
	svc := newNotificationService(&mockNotificationRepo{}, nil)

	notifications, err := svc.ListForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}
