// Package identity talks to the external identity provider (Keycloak).
package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
)

// Role names as they appear in the provider's realm roles, strongest first.
var knownRoles = []string{"admin", "qa", "agent"}

const defaultRole = "agent"

type UserInfo struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

type Token struct {
	AccessToken string
	ExpiresIn   int
}

//go:generate mockgen -source=identity.go -destination=mock/identity_mock.go -package=mock
type Provider interface {
	// Login exchanges credentials for a provider access token.
	Login(ctx context.Context, email, password string) (*Token, error)
	// UserInfo resolves an access token through the userinfo endpoint.
	UserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
	SetPassword(ctx context.Context, userID, password string) error
}

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Email atau password salah",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token identity provider tidak valid",
		http.StatusUnauthorized,
	)
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Identity provider unavailable",
		http.StatusServiceUnavailable,
	)
	// The provider refused the new password, usually a password policy.
	ErrPasswordRejected = apperror.New(
		apperror.CodeInvalidInput,
		"Password ditolak oleh identity provider",
		http.StatusBadRequest,
	)
	errMissingSubject = errors.New("identity: userinfo has no subject")
)

// pickRole returns the strongest known role in names.
func pickRole(names []string) string {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, r := range knownRoles {
		if have[r] {
			return r
		}
	}
	return defaultRole
}
