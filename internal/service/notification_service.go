package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
	"github.com/skillswap/skillswap-api/pkg/mailer"
)

type notificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
}

// NotificationService handles notification dispatch and retrieval.
type NotificationService struct {
	repo      notificationRepository
	mail      mailer.Mailer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs the service. mail may be nil.
func NewNotificationService(repo notificationRepository, mail mailer.Mailer, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{repo: repo, mail: mail, validator: validate, logger: logger}
}

// Send fires the side effects the payload selects: an email when an address
// is present, a persisted notification when a user id is present. Email
// failures are logged and swallowed; the persisted row is the only side
// effect that can fail the call.
func (s *NotificationService) Send(ctx context.Context, req dto.SendNotificationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "subject and message are required")
	}

	if req.Email != "" && s.mail != nil {
		if err := s.mail.Send(req.Email, req.Subject, req.Message); err != nil {
			s.logger.Warn("notification email failed", zap.String("to", req.Email), zap.Error(err))
		}
	}

	if req.UserID != "" {
		notification := &models.Notification{
			UserID:  &req.UserID,
			Subject: req.Subject,
			Message: req.Message,
		}
		if err := s.repo.Create(ctx, notification); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store notification")
		}
	}

	return nil
}

// ListForUser returns an account's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch notifications")
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}
