// Package session signs and verifies the HS256 session token carried in the
// session cookie or as a Bearer token.
package session

import (
	"errors"
	"net/http"
	"time"

	autherrors "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultMaxAge = 7 * 24 * time.Hour

type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Options struct {
	Secret     string
	CookieName string
	MaxAge     time.Duration
	Secure     bool
}

type Manager struct {
	secret     []byte
	cookieName string
	maxAge     time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(opts Options) *Manager {
	if opts.CookieName == "" {
		opts.CookieName = "cc_session"
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	return &Manager{
		secret:     []byte(opts.Secret),
		cookieName: opts.CookieName,
		maxAge:     opts.MaxAge,
		secure:     opts.Secure,
		now:        time.Now,
	}
}

func (m *Manager) CookieName() string { return m.cookieName }

// MaxAge resolves a requested lifetime. Zero or negative means the default,
// and the configured default is also the ceiling.
func (m *Manager) MaxAge(requested time.Duration) time.Duration {
	if requested <= 0 || requested > m.maxAge {
		return m.maxAge
	}
	return requested
}

func (m *Manager) Issue(id Identity, maxAge time.Duration) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(m.MaxAge(maxAge))
	claims := Claims{
		Email: id.Email,
		Role:  id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, autherrors.ErrTokenGenerationFailed
	}
	return signed, exp, nil
}

func (m *Manager) Verify(tokenString string) (*Identity, error) {
	if tokenString == "" {
		return nil, autherrors.ErrTokenNotFound
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return nil, autherrors.ErrInvalidToken
	}

	return &Identity{UserID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

func (m *Manager) SetCookie(c *gin.Context, token string, maxAge time.Duration) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.MaxAge(maxAge).Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) ClearCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
