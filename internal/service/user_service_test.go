package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/dto"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	appErrors "github.com/skillswap/skillswap-api/pkg/errors"
)

type mockUserRepo struct {
	user            *models.User
	findByIDErr     error
	updateErr       error
	lastUpdate      repository.UserUpdate
	teachingSkills  []string
	teachingErr     error
	lastAddedSkills []string
	bookmarks       []string
	bookmarkErr     error
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	return m.user, nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, update repository.UserUpdate) (*models.User, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastUpdate = update
	return m.user, nil
}

func (m *mockUserRepo) AddTeachingSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	if m.teachingErr != nil {
		return nil, m.teachingErr
	}
	m.lastAddedSkills = skills
	return m.teachingSkills, nil
}

func (m *mockUserRepo) AddBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	if m.bookmarkErr != nil {
		return nil, m.bookmarkErr
	}
	return m.bookmarks, nil
}

func (m *mockUserRepo) RemoveBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	if m.bookmarkErr != nil {
		return nil, m.bookmarkErr
	}
	return m.bookmarks, nil
}

type mockUserRecordings struct {
	recordings []models.Recording
	err        error
}

func (m *mockUserRecordings) ListByUser(ctx context.Context, userID string) ([]models.Recording, error) {
	return m.recordings, m.err
}

func newUserService(repo *mockUserRepo, recordings *mockUserRecordings) *UserService {
	if recordings == nil {
		recordings = &mockUserRecordings{}
	}
	return NewUserService(repo, recordings, validator.New(), zap.NewNop())
}

func TestUserProfileNotFound(t *testing.T) {
	svc := newUserService(&mockUserRepo{findByIDErr: sql.ErrNoRows}, nil)

	_, err := svc.Profile(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestUserUpdateProfilePartial(t *testing.T) {
	repo := &mockUserRepo{user: &models.User{ID: "u1"}}
	svc := newUserService(repo, nil)

	name := "Renamed"
	_, err := svc.UpdateProfile(context.Background(), "u1", dto.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, repo.lastUpdate.Name)
	assert.Equal(t, "Renamed", *repo.lastUpdate.Name)
	assert.Nil(t, repo.lastUpdate.Contact)
	assert.Nil(t, repo.lastUpdate.SkillsTeaching)
}

func TestUserAddSkillsToTeachRequiresArray(t *testing.T) {
	svc := newUserService(&mockUserRepo{}, nil)

	_, err := svc.AddSkillsToTeach(context.Background(), "u1", dto.AddTeachSkillsRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestUserAddSkillsToTeachTrims(t *testing.T) {
	repo := &mockUserRepo{teachingSkills: []string{"go", "rust"}}
	svc := newUserService(repo, nil)

	skills, err := svc.AddSkillsToTeach(context.Background(), "u1", dto.AddTeachSkillsRequest{Skills: []string{"  go ", "", "rust"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, repo.lastAddedSkills)
	assert.Equal(t, []string{"go", "rust"}, skills)
}

func TestUserMyRecordingsEmpty(t *testing.T) {
	svc := newUserService(&mockUserRepo{}, &mockUserRecordings{})

	recordings, err := svc.MyRecordings(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, recordings)
	assert.Empty(t, recordings)
}

func TestUserBookmark(t *testing.T) {
	repo := &mockUserRepo{bookmarks: []string{"r1"}}
	svc := newUserService(repo, nil)

	bookmarks, err := svc.Bookmark(context.Background(), "u1", "r1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, bookmarks)
}

func TestUserRemoveBookmarkMissingUser(t *testing.T) {
	svc := newUserService(&mockUserRepo{bookmarkErr: sql.ErrNoRows}, nil)

	_, err := svc.RemoveBookmark(context.Background(), "missing", "r1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
