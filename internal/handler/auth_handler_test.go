package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/domain"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/mocks"
	"github.com/TarlavinaMaria/NewsBlogOfficialApp/internal/service"
)

// newAuthTestServer wires the handler behind an in-memory session
// manager, the same shape main uses with the pgx-backed store.
func newAuthTestServer(t *testing.T) (*mocks.MockAuthServiceInterface, *mocks.MockNewsServiceInterface, *gin.Engine, http.Handler) {
	t.Helper()
	authService := mocks.NewMockAuthServiceInterface(t)
	newsService := mocks.NewMockNewsServiceInterface(t)
	sessions := scs.New()
	handler := NewAuthHandler(authService, newsService, sessions)

	router := gin.New()
	router.POST("/api/v1/auth/register", handler.Register)
	router.POST("/api/v1/auth/login", handler.Login)
	router.POST("/api/v1/auth/logout", handler.Logout)
	router.POST("/api/v1/auth/password-reset", handler.RequestPasswordReset)
	router.POST("/api/v1/auth/password-reset/confirm", handler.ConfirmPasswordReset)
	router.GET("/api/v1/users/:id/news", handler.AuthorNews)

	return authService, newsService, router, sessions.LoadAndSave(router)
}

func sampleUser() *domain.User {
	return &domain.User{
		ID:        uuid.NewString(),
		Username:  "reader1",
		Email:     "reader1@example.com",
		Role:      domain.RoleUser,
		Active:    true,
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	t.Run("creates account and starts a session", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		user := sampleUser()
		authService.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil).Once()

		body := []byte(`{"username":"reader1","email":"reader1@example.com","password":"longenough"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotEmpty(t, w.Result().Cookies(), "registration must set a session cookie")

		var resp UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, user.ID, resp.ID)
		require.Equal(t, domain.RoleUser, resp.Role)
		require.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate username", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		authService.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateUser).Once()

		body := []byte(`{"username":"reader1","email":"reader1@example.com","password":"longenough"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandlerLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		user := sampleUser()
		authService.EXPECT().Authenticate(mock.Anything, "reader1", "longenough").Return(user, nil).Once()

		body := []byte(`{"username":"reader1","password":"longenough"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("bad credentials", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		authService.EXPECT().Authenticate(mock.Anything, "reader1", "wrong").
			Return(nil, domain.ErrInvalidCredentials).
			Once()

		body := []byte(`{"username":"reader1","password":"wrong"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields rejected before the service", func(t *testing.T) {
		_, _, _, srv := newAuthTestServer(t)

		body := []byte(`{"username":"reader1"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlerLogout(t *testing.T) {
	_, _, _, srv := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "logged out")
}

func TestAuthHandlerRequestPasswordReset(t *testing.T) {
	t.Run("always reports success", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		authService.EXPECT().RequestPasswordReset(mock.Anything, "nobody@example.com").Return(nil).Once()

		body := []byte(`{"email":"nobody@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-reset", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "if the email is registered")
	})

	t.Run("malformed email", func(t *testing.T) {
		_, _, _, srv := newAuthTestServer(t)

		body := []byte(`{"email":"not-an-email"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-reset", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandlerConfirmPasswordReset(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		authService.EXPECT().ConfirmPasswordReset(mock.Anything, "tok-1", "newpassword").Return(nil).Once()

		body := []byte(`{"token":"tok-1","password":"newpassword"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-reset/confirm", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "password updated")
	})

	t.Run("expired token", func(t *testing.T) {
		authService, _, _, srv := newAuthTestServer(t)

		authService.EXPECT().ConfirmPasswordReset(mock.Anything, "tok-old", "newpassword").
			Return(domain.ErrTokenInvalid).
			Once()

		body := []byte(`{"token":"tok-old","password":"newpassword"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/password-reset/confirm", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "invalid or expired")
	})
}

func TestAuthHandlerAuthorNews(t *testing.T) {
	t.Run("lists the author's published articles", func(t *testing.T) {
		_, newsService, _, srv := newAuthTestServer(t)

		authorID := uuid.NewString()
		newsService.EXPECT().
			List(mock.Anything, mock.MatchedBy(func(f domain.NewsFilter) bool {
				return f.AuthorID == authorID && f.Status == domain.StatusPublished
			})).
			Return(&service.NewsPage{Items: []domain.News{}, Page: 1, PerPage: 10}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+authorID+"/news", nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed author id", func(t *testing.T) {
		_, _, _, srv := newAuthTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/nope/news", nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
