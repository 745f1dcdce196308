package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/g4market/internal/domain"
	"github.com/GlebRadaev/g4market/internal/dto"
	"github.com/GlebRadaev/g4market/internal/service/authservice"
	pkgauth "github.com/GlebRadaev/g4market/pkg/auth"
	"github.com/GlebRadaev/g4market/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, pkgauth.CookieConfig{})
	return handler, service
}

func sessionCookie(rr *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == pkgauth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name            string
		body            string
		prepareMock     func()
		expectedCode    int
		expectedError   string
		expectedMessage string
	}{
		{
			name: "Successful registration",
			body: `{"username":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "newuser", "password123").Return(&domain.User{
					ID:           1,
					Username:     "newuser",
					PasswordHash: "hashedpassword",
				}, nil)
			},
			expectedCode:    http.StatusCreated,
			expectedMessage: "Registration successful",
		},
		{
			name: "User already exists",
			body: `{"username":"existinguser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "existinguser", "password123").Return(nil, authservice.ErrUsernameTaken)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username already exists",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Empty body",
			body:          ``,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing password",
			body:          `{"username":"newuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing username or password",
		},
		{
			name:          "Empty username",
			body:          `{"username":"","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing username or password",
		},
		{
			name:          "Username too long",
			body:          `{"username":"` + strings.Repeat("u", 81) + `","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username or password is too long",
		},
		{
			name:          "NUL in username",
			body:          `{"username":"play\u0000er","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username contains invalid characters",
		},
		{
			name: "Password over bcrypt limit",
			body: `{"username":"newuser","password":"` + strings.Repeat("é", 40) + `"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "newuser", strings.Repeat("é", 40)).Return(nil, pkgauth.ErrPasswordTooLong)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Username or password is too long",
		},
		{
			name: "Internal error",
			body: `{"username":"newuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), "newuser", "password123").Return(nil, errors.New("db is down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/register", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Register(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}
			var resp dto.RegisterResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Nil(t, sessionCookie(rr))
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	user := &domain.User{ID: 1, Username: "testuser", PasswordHash: "hash"}
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectCookie  bool
	}{
		{
			name: "Successful login",
			body: `{"username":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "password123").Return(user, nil)
				service.EXPECT().StartSession(gomock.Any(), user).Return("session-token", expiresAt, nil)
			},
			expectedCode: http.StatusOK,
			expectCookie: true,
		},
		{
			name: "Invalid credentials",
			body: `{"username":"testuser","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name:          "Missing fields",
			body:          `{"username":"testuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name:          "NUL in username",
			body:          `{"username":"test\u0000user","password":"password123"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid username or password",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Storage error",
			body: `{"username":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "password123").Return(nil, errors.New("db is down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Session error",
			body: `{"username":"testuser","password":"password123"}`,
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), "testuser", "password123").Return(user, nil)
				service.EXPECT().StartSession(gomock.Any(), user).Return("", time.Time{}, errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.Nil(t, sessionCookie(rr))
				return
			}
			var resp dto.LoginResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "Login successful", resp.Message)
			assert.Equal(t, "testuser", resp.Username)

			cookie := sessionCookie(rr)
			require.NotNil(t, cookie)
			assert.Equal(t, "session-token", cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.True(t, expiresAt.Equal(cookie.Expires))
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Session ended", func(t *testing.T) {
		service.EXPECT().EndSession(gomock.Any(), "sid").Return(nil)

		req := httptest.NewRequest("POST", "/api/logout", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.SessionIDKey, "sid"))
		rr := httptest.NewRecorder()

		handler.Logout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Logged out"}`, rr.Body.String())
		cookie := sessionCookie(rr)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})

	t.Run("Store error", func(t *testing.T) {
		service.EXPECT().EndSession(gomock.Any(), "sid").Return(errors.New("redis down"))

		req := httptest.NewRequest("POST", "/api/logout", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.SessionIDKey, "sid"))
		rr := httptest.NewRecorder()

		handler.Logout(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestUserInfoHandler(t *testing.T) {
	handler, _ := NewMock(t)

	tests := []struct {
		name     string
		ctx      func(context.Context) context.Context
		expected string
	}{
		{
			name: "Authenticated",
			ctx: func(ctx context.Context) context.Context {
				ctx = context.WithValue(ctx, pkgauth.UserIDKey, 1)
				return context.WithValue(ctx, pkgauth.UsernameKey, "player")
			},
			expected: `{"is_authenticated":true,"username":"player"}`,
		},
		{
			name:     "Anonymous",
			ctx:      func(ctx context.Context) context.Context { return ctx },
			expected: `{"is_authenticated":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/user_info", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			rr := httptest.NewRecorder()

			handler.UserInfo(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, tt.expected, rr.Body.String())
		})
	}
}
