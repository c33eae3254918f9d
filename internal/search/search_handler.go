package search

import (
	"net/http"
	"strconv"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("search.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("search.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Search(c *gin.Context) {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	res, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("search request failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.ErrorWithData(c, httpErr.Status, httpErr.Code, httpErr.Message, Result{Results: []Hit{}})
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
