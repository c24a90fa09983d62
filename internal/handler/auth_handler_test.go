package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/skillswap-api/internal/middleware"
	"github.com/skillswap/skillswap-api/internal/models"
	"github.com/skillswap/skillswap-api/internal/service"
)

type authRepoStub struct {
	userByEmail    *models.User
	findByEmailErr error
	userByID       *models.User
	findByIDErr    error
	created        *models.User
}

func (s *authRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.findByEmailErr != nil {
		return nil, s.findByEmailErr
	}
	return s.userByEmail, nil
}

func (s *authRepoStub) FindByID(ctx context.Context, id string) (*models.User, error) {
	if s.findByIDErr != nil {
		return nil, s.findByIDErr
	}
	return s.userByID, nil
}

func (s *authRepoStub) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "u1"
	}
	s.created = user
	return nil
}

func newAuthHandler(stub *authRepoStub) *AuthHandler {
	svc := service.NewAuthService(stub, validator.New(), zap.NewNop(), service.AuthConfig{TokenSecret: "secret", TokenExpiry: time.Hour})
	return NewAuthHandler(svc)
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &authRepoStub{findByEmailErr: sql.ErrNoRows}
	handler := newAuthHandler(stub)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"name":"Asha","email":"asha@example.com","password":"password","skillsToTeach":["go"]}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "asha@example.com", user["email"])
	_, leaked := user["passwordHash"]
	assert.False(t, leaked)
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &authRepoStub{userByEmail: &models.User{ID: "u1", Email: "asha@example.com"}}
	handler := newAuthHandler(stub)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(`{"name":"Asha","email":"asha@example.com","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandlerLoginUnknownEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandler(&authRepoStub{findByEmailErr: sql.ErrNoRows})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"nobody@example.com","password":"password"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), 10)
	handler := newAuthHandler(&authRepoStub{userByEmail: &models.User{ID: "u1", Email: "asha@example.com", PasswordHash: string(hash)}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"asha@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerMe(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newAuthHandler(&authRepoStub{userByID: &models.User{ID: "u1", Email: "asha@example.com"}})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/auth/me", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "u1"})

	handler.Me(c)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, "u1", user["id"])
}
