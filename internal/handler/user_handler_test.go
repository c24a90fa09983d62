package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/repository"
	"github.com/skillswap/skillswap-api/internal/service"
)

type userRepoStub struct {
	user      *models.User
	bookmarks []string
	skills    []string
}

func (s *userRepoStub) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.user, nil
}

func (s *userRepoStub) UpdateProfile(ctx context.Context, id string, update repository.UserUpdate) (*models.User, error) {
	return s.user, nil
}

func (s *userRepoStub) AddTeachingSkills(ctx context.Context, id string, skills []string) ([]string, error) {
	return s.skills, nil
}

func (s *userRepoStub) AddBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	return s.bookmarks, nil
}

func (s *userRepoStub) RemoveBookmark(ctx context.Context, id, recordingID string) ([]string, error) {
	return s.bookmarks, nil
}

type userRecordingsStub struct {
	recordings []models.Recording
}

func (s *userRecordingsStub) ListByUser(ctx context.Context, userID string) ([]models.Recording, error) {
	return s.recordings, nil
}

func newUserHandler(stub *userRepoStub) *UserHandler {
	svc := service.NewUserService(stub, &userRecordingsStub{}, validator.New(), zap.NewNop())
	return NewUserHandler(svc)
}

func TestUserHandlerProfileUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserHandler(&userRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	c.Request = req

	handler.Profile(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandlerProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserHandler(&userRepoStub{user: &models.User{ID: "u1", Email: "asha@example.com"}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1"})

	handler.Profile(c)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "u1", data["id"])
}

func TestUserHandlerAddSkillsToTeachInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserHandler(&userRepoStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/users/skills/teach", bytes.NewBufferString(`{"skills":"go"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1"})

	handler.AddSkillsToTeach(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandlerBookmark(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newUserHandler(&userRepoStub{bookmarks: []string{"r1"}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/users/recordings/r1/bookmark", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "r1"}}
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1"})

	handler.Bookmark(c)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"r1"}, data["bookmarks"])
}
