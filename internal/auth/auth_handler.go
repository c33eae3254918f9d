package auth

import (
	"net/http"
	"strings"
	"time"

	autherrors "github.com/ccparagoncorp/customercare-web-sub001/internal/auth/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/auth/session"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/middleware"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service  Service
	sessions *session.Manager
	logger   *zap.Logger
}

func NewHandler(service Service, sessions *session.Manager, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, sessions: sessions, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.sessions.SetCookie(c, res.Token, time.Duration(res.MaxAge)*time.Second)
	response.Success(c, http.StatusOK, gin.H{"user": res.User}, nil)
}

// Session sets or clears the session cookie. Setting requires the provider
// access token as a Bearer header.
func (h *Handler) Session(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	switch req.Action {
	case SessionActionClear:
		h.sessions.ClearCookie(c)
		response.Success(c, http.StatusOK, gin.H{"ok": true}, nil)
	case SessionActionSet:
		token, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		res, err := h.service.Establish(c.Request.Context(), strings.TrimSpace(token), time.Duration(req.MaxAge)*time.Second)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		h.sessions.SetCookie(c, res.Token, time.Duration(res.MaxAge)*time.Second)
		response.Success(c, http.StatusOK, gin.H{"ok": true, "user": res.User}, nil)
	default:
		h.writeServiceError(c, autherrors.ErrInvalidSessionAction)
	}
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		h.writeServiceError(c, autherrors.ErrTokenNotFound)
		return
	}
	response.Success(c, http.StatusOK, session.Identity{
		UserID: userID,
		Email:  c.GetString(middleware.ContextEmail),
		Role:   c.GetString(middleware.ContextRole),
	}, nil)
}
