package agent

import (
	"errors"
	"net/http"

	agenterrors "github.com/ccparagoncorp/customercare-web-sub001/internal/agent/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const targetUserKey = "target_user_id"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("agent.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("agent.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("agent request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetProfile(c *gin.Context) {
	a, err := h.service.GetProfile(c.Request.Context(), c.GetString(targetUserKey))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	a, err := h.service.UpdateProfile(c.Request.Context(), c.GetString(targetUserKey), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a, nil)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxPhotoSize+(1<<20))

	fh, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeServiceError(c, agenterrors.ErrPhotoTooLarge)
			return
		}
		h.writeServiceError(c, agenterrors.ErrPhotoMissing)
		return
	}
	if fh.Size > MaxPhotoSize {
		h.writeServiceError(c, agenterrors.ErrPhotoTooLarge)
		return
	}

	file, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, agenterrors.ErrPhotoMissing)
		return
	}
	defer file.Close()

	a, err := h.service.UploadPhoto(c.Request.Context(), c.GetString(targetUserKey), file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a, nil)
}

func (h *Handler) List(c *gin.Context) {
	var filter AgentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	agents, err := h.service.ListAgents(c.Request.Context(), filter)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status == http.StatusServiceUnavailable {
			response.ErrorWithData(c, httpErr.Status, httpErr.Code, httpErr.Message, []any{})
			return
		}
		h.writeServiceError(c, err)
		return
	}
	if agents == nil {
		agents = []Agent{}
	}
	response.Success(c, http.StatusOK, agents, nil)
}

func (h *Handler) GetPerformance(c *gin.Context) {
	summary, err := h.service.GetPerformance(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, summary, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	a, err := h.service.CreateAgent(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	a, err := h.service.UpdateAgent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.DeleteAgent(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreatePerformance(c *gin.Context) {
	var req PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	rec, err := h.service.CreatePerformance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, rec, nil)
}

func (h *Handler) UpdatePerformance(c *gin.Context) {
	var req PerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	rec, err := h.service.UpdatePerformance(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, rec, nil)
}

func (h *Handler) DeletePerformance(c *gin.Context) {
	if err := h.service.DeletePerformance(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
