package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeKeycloak answers the handful of endpoints the adapter calls, matched by
// path suffix so the test does not depend on the client's base path layout.
func fakeKeycloak(t *testing.T, roles []string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/realms/master/protocol/openid-connect/token"):
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "admin-token", "expires_in": 60})
		case strings.HasSuffix(r.URL.Path, "/protocol/openid-connect/token"):
			require.NoError(t, r.ParseForm())
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "user-token", "expires_in": 300})
		case strings.HasSuffix(r.URL.Path, "/protocol/openid-connect/userinfo"):
			if r.Header.Get("Authorization") != "Bearer user-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"sub": "kc-1", "email": "rina@example.com", "preferred_username": "rina"})
		case strings.HasSuffix(r.URL.Path, "/role-mappings/realm"):
			out := make([]map[string]string, 0, len(roles))
			for _, name := range roles {
				out = append(out, map[string]string{"name": name})
			}
			_ = json.NewEncoder(w).Encode(out)
		case strings.HasSuffix(r.URL.Path, "/reset-password"):
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestKeycloak(url string) *Keycloak {
	return NewKeycloak(KeycloakConfig{
		URL:           url,
		Realm:         "care",
		ClientID:      "portal",
		AdminUser:     "admin",
		AdminPassword: "admin",
	}, zap.NewNop())
}

func TestKeycloak_Login(t *testing.T) {
	srv := fakeKeycloak(t, nil)
	defer srv.Close()
	kc := newTestKeycloak(srv.URL)

	token, err := kc.Login(context.Background(), "rina@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-token", token.AccessToken)

	_, err = kc.Login(context.Background(), "rina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestKeycloak_UserInfo(t *testing.T) {
	srv := fakeKeycloak(t, []string{"offline_access", "qa", "agent"})
	defer srv.Close()
	kc := newTestKeycloak(srv.URL)

	info, err := kc.UserInfo(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "kc-1", info.UserID)
	assert.Equal(t, "rina@example.com", info.Email)
	assert.Equal(t, "rina", info.Name)
	assert.Equal(t, "qa", info.Role)

	_, err = kc.UserInfo(context.Background(), "forged")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestKeycloak_SetPassword(t *testing.T) {
	srv := fakeKeycloak(t, nil)
	defer srv.Close()

	assert.NoError(t, newTestKeycloak(srv.URL).SetPassword(context.Background(), "kc-1", "n3w"))
}

func TestKeycloak_Unreachable(t *testing.T) {
	kc := newTestKeycloak("http://127.0.0.1:1")

	_, err := kc.Login(context.Background(), "a@b.c", "x")
	assert.Equal(t, 503, apperror.ToHTTP(err).Status)
}

func TestPickRole(t *testing.T) {
	assert.Equal(t, "admin", pickRole([]string{"agent", "admin"}))
	assert.Equal(t, "agent", pickRole([]string{"uma_authorization"}))
	assert.Equal(t, "agent", pickRole(nil))
}
