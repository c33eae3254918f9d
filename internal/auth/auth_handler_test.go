package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth"
	autherrors "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/errors"
	authMock "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/mock"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth/session"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *authMock.MockService, *session.Manager) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	ctrl := gomock.NewController(t)
	svc := authMock.NewMockService(ctrl)
	sessions := session.NewManager(session.Options{Secret: "test-secret"})
	h := auth.NewHandler(svc, sessions, zap.NewNop())

	r := gin.New()
	r.POST("/login", h.Login)
	r.POST("/session", h.Session)
	return r, svc, sessions
}

func postJSON(r *gin.Engine, path string, body any, header http.Header) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success sets session cookie", func(t *testing.T) {
		r, svc, sessions := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), "test@example.com", "password123").
			Return(&auth.SessionResult{Token: "signed", MaxAge: 600, User: auth.UserResponse{ID: "u-1"}}, nil)

		w := postJSON(r, "/login", auth.LoginRequest{Email: "test@example.com", Password: "password123"}, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := findCookie(w, sessions.CookieName())
		require.NotNil(t, cookie)
		assert.Equal(t, "signed", cookie.Value)
		assert.Equal(t, 600, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		r, svc, sessions := setupAuthRouter(t)
		svc.EXPECT().
			Login(gomock.Any(), "test@example.com", "wrong").
			Return(nil, autherrors.ErrInvalidCredentials)

		w := postJSON(r, "/login", auth.LoginRequest{Email: "test@example.com", Password: "wrong"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, findCookie(w, sessions.CookieName()))
	})

	t.Run("Validation error", func(t *testing.T) {
		r, _, _ := setupAuthRouter(t)
		w := postJSON(r, "/login", map[string]string{"email": "not-an-email"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Session(t *testing.T) {
	t.Run("set with bearer token", func(t *testing.T) {
		r, svc, sessions := setupAuthRouter(t)
		svc.EXPECT().
			Establish(gomock.Any(), "kc-token", 120*time.Second).
			Return(&auth.SessionResult{Token: "signed", MaxAge: 120}, nil)

		w := postJSON(r, "/session", auth.SessionRequest{Action: "set", MaxAge: 120},
			http.Header{"Authorization": {"Bearer kc-token"}})
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := findCookie(w, sessions.CookieName())
		require.NotNil(t, cookie)
		assert.Equal(t, 120, cookie.MaxAge)
	})

	t.Run("set without token", func(t *testing.T) {
		r, svc, _ := setupAuthRouter(t)
		svc.EXPECT().Establish(gomock.Any(), "", time.Duration(0)).Return(nil, autherrors.ErrTokenNotFound)

		w := postJSON(r, "/session", auth.SessionRequest{Action: "set"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("clear expires cookie", func(t *testing.T) {
		r, _, sessions := setupAuthRouter(t)
		w := postJSON(r, "/session", auth.SessionRequest{Action: "clear"}, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		cookie := findCookie(w, sessions.CookieName())
		require.NotNil(t, cookie)
		assert.Equal(t, "", cookie.Value)
		assert.True(t, cookie.MaxAge < 0)
	})

	t.Run("unknown action", func(t *testing.T) {
		r, _, _ := setupAuthRouter(t)
		w := postJSON(r, "/session", auth.SessionRequest{Action: "refresh"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := session.NewManager(session.Options{Secret: "test-secret"})
	h := auth.NewHandler(nil, sessions, zap.NewNop())

	token, _, err := sessions.Issue(session.Identity{UserID: "u-1", Email: "a@example.com", Role: "admin"}, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	auth.RegisterRoutes(r.Group("/api"), h, sessions)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data session.Identity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body.Data.UserID)
	assert.Equal(t, "admin", body.Data.Role)

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
