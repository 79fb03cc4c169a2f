package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/services"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStreaks(ctx context.Context, id string, current, longest int) error {
	return m.Called(ctx, id, current, longest).Error(0)
}

func setupHandler() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)

	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo)
	tokenService := services.NewTokenService("handler-test-secret", "skymning-test", 1*time.Hour, mockRepo)
	authHandler := NewAuthHandler(authService, tokenService)

	router := gin.New()
	authHandler.RegisterRoutes(router.Group(""))

	return router, mockRepo
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("Success: Should return 201 and created user (No Password)", func(t *testing.T) {
		router, mockRepo := setupHandler()

		payload := map[string]string{
			"email":    "api_test@skymning.app",
			"password": "SuperSecretPassword1!",
		}
		body, _ := json.Marshal(payload)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response userResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, payload["email"], response.Email)
		assert.NotEmpty(t, response.ID)

		assert.NotContains(t, w.Body.String(), "password")

		mockRepo.AssertExpectations(t)
	})

	t.Run("Fail: Should return 400 for Bad JSON (Invalid Email)", func(t *testing.T) {
		router, mockRepo := setupHandler()

		payload := map[string]string{
			"email":    "not-an-email",
			"password": "Password123!",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return 400 for Bad JSON (Password too short)", func(t *testing.T) {
		router, mockRepo := setupHandler()

		payload := map[string]string{
			"email":    "valid@email.com",
			"password": "short",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Fail: Should return 409 Conflict if email exists", func(t *testing.T) {
		router, mockRepo := setupHandler()

		payload := map[string]string{
			"email":    "duplicate@skymning.app",
			"password": "VeryValidPassword1!",
		}
		body, _ := json.Marshal(payload)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrEmailAlreadyExists)

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "email already exists")
	})

	t.Run("Fail: Should return 500 Internal Server Error on DB failure", func(t *testing.T) {
		router, mockRepo := setupHandler()

		payload := map[string]string{
			"email":    "crash@skymning.app",
			"password": "VeryValidPassword1!",
		}
		body, _ := json.Marshal(payload)

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db connection lost"))

		req, _ := http.NewRequest(http.MethodPost, "/auth/register", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal server error")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	storedUser := func(t *testing.T, email, password string) *domain.User {
		user, err := domain.NewUser("user-login-1", email)
		require.NoError(t, err)
		require.NoError(t, user.SetPassword(password))
		return user
	}

	t.Run("Success: Should return 200 with token and user", func(t *testing.T) {
		router, mockRepo := setupHandler()

		stored := storedUser(t, "login@skymning.app", "CorrectHorseBattery1!")
		mockRepo.On("GetByEmail", mock.Anything, "login@skymning.app").Return(stored, nil)

		payload := map[string]string{
			"email":    "login@skymning.app",
			"password": "CorrectHorseBattery1!",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response loginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, stored.ID, response.User.ID)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Fail: Should return 401 for wrong password", func(t *testing.T) {
		router, mockRepo := setupHandler()

		stored := storedUser(t, "login@skymning.app", "CorrectHorseBattery1!")
		mockRepo.On("GetByEmail", mock.Anything, "login@skymning.app").Return(stored, nil)

		payload := map[string]string{
			"email":    "login@skymning.app",
			"password": "WrongPassword!",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("Fail: Should return 401 for unknown email (same message)", func(t *testing.T) {
		router, mockRepo := setupHandler()

		mockRepo.On("GetByEmail", mock.Anything, "ghost@skymning.app").Return(nil, domain.ErrUserNotFound)

		payload := map[string]string{
			"email":    "ghost@skymning.app",
			"password": "whatever123",
		}
		body, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})
}
