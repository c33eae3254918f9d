package middleware

import (
	"net/http"
	"strings"

	autherrors "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth/session"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"

	RoleAdmin = "admin"
)

// SessionVerifier is satisfied by *session.Manager.
type SessionVerifier interface {
	Verify(token string) (*session.Identity, error)
	CookieName() string
}

// sessionToken prefers a Bearer header and falls back to the session cookie.
func sessionToken(c *gin.Context, cookieName string) string {
	if token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found && token != "" {
		return token
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}

func setIdentity(c *gin.Context, id *session.Identity) {
	c.Set(ContextUserID, id.UserID)
	c.Set(ContextEmail, id.Email)
	c.Set(ContextRole, id.Role)

	ctx := contextutil.WithUserID(c.Request.Context(), id.UserID)
	ctx = contextutil.WithRole(ctx, id.Role)

	// the request logger was built before the caller was known
	reqLogger := contextutil.GetLogger(ctx, nil).With(
		zap.String("user_id", id.UserID),
		zap.String("role", id.Role),
	)
	c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))
}

func AuthMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := verifier.Verify(sessionToken(c, verifier.CookieName()))
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// SelfOrAdmin only lets the caller through when the userId query parameter
// names the caller, unless the caller is an admin. A missing userId defaults
// to the caller.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetString(ContextUserID)
		if callerID == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "User tidak terautentikasi", nil)
			c.Abort()
			return
		}

		target := strings.TrimSpace(c.Query(param))
		if target == "" {
			target = callerID
		}
		if target != callerID && c.GetString(ContextRole) != RoleAdmin {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Set("target_user_id", target)
		c.Next()
	}
}
