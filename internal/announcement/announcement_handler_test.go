package announcement_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/announcement"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeService struct {
	announcement.Service
	listFn func(ctx context.Context) ([]announcement.Announcement, error)
}

func (f *fakeService) List(ctx context.Context) ([]announcement.Announcement, error) {
	return f.listFn(ctx)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	h := announcement.NewHandler(&fakeService{
		listFn: func(ctx context.Context) ([]announcement.Announcement, error) {
			return []announcement.Announcement{{Title: "Maintenance"}}, nil
		},
	}, zap.NewNop())
	announcement.RegisterRoutes(r.Group("/api"), h)
	r.POST("/api/admin/announcements", h.Create)

	t.Run("list", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/announcements", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Maintenance")
	})

	t.Run("create rejects bad link", func(t *testing.T) {
		body := `{"title":"x","description":"y","link":"not a url"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/announcements", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})
}
