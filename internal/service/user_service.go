package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type userRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update repository.UserUpdate) (*models.User, error)
	AddTeachingSkills(ctx context.Context, id string, skills []string) ([]string, error)
	AddBookmark(ctx context.Context, id, recordingID string) ([]string, error)
	RemoveBookmark(ctx context.Context, id, recordingID string) ([]string, error)
}

type userRecordingRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Recording, error)
}

// UserService handles profile and bookmark workflows.
type UserService struct {
	repo       userRepository
	recordings userRecordingRepository
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(repo userRepository, recordings userRecordingRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{repo: repo, recordings: recordings, validator: validate, logger: logger}
}

// Profile returns the caller's account.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch profile")
	}
	return user, nil
}

// UpdateProfile applies a partial update: omitted fields keep their stored
// value, skill lists are replaced only when arrays are supplied.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}

	update := repository.UserUpdate{
		Name:                req.Name,
		Email:               req.Email,
		Contact:             req.Contact,
		College:             req.College,
		ProfessionalDetails: req.ProfessionalDetails,
		SkillsTeaching:      req.SkillsToTeach,
		SkillsLearning:      req.SkillsToLearn,
	}

	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update profile")
	}
	return user, nil
}

// SharedSkills returns the plain names on the caller's teaching list.
func (s *UserService) SharedSkills(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.SkillsTeaching, nil
}

// SkillsToLearn returns the plain names on the caller's learning list.
func (s *UserService) SkillsToLearn(ctx context.Context, userID string) ([]string, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.SkillsLearning, nil
}

// AddSkillsToTeach merges trimmed, non-empty names into the caller's teaching
// list, de-duplicating against the stored set.
func (s *UserService) AddSkillsToTeach(ctx context.Context, userID string, req dto.AddTeachSkillsRequest) ([]string, error) {
	if req.Skills == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "skills must be an array")
	}

	cleaned := make([]string, 0, len(req.Skills))
	for _, skill := range req.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}

	skills, err := s.repo.AddTeachingSkills(ctx, userID, cleaned)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to add teaching skills")
	}
	return skills, nil
}

// MyRecordings returns recordings of sessions the caller taught or attended.
func (s *UserService) MyRecordings(ctx context.Context, userID string) ([]models.Recording, error) {
	recordings, err := s.recordings.ListByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch recordings")
	}
	if recordings == nil {
		recordings = []models.Recording{}
	}
	return recordings, nil
}

// Bookmark idempotently adds a recording id to the caller's bookmark set.
func (s *UserService) Bookmark(ctx context.Context, userID, recordingID string) ([]string, error) {
	bookmarks, err := s.repo.AddBookmark(ctx, userID, recordingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to bookmark recording")
	}
	return bookmarks, nil
}

// RemoveBookmark removes a recording id from the caller's bookmark set.
// Removing an id that was never bookmarked is a no-op.
func (s *UserService) RemoveBookmark(ctx context.Context, userID, recordingID string) ([]string, error) {
	bookmarks, err := s.repo.RemoveBookmark(ctx, userID, recordingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove bookmark")
	}
	return bookmarks, nil
}
