package training_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/training"
	trainingerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/training/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTrainingService struct {
	training.Service

	ListFn      func(ctx context.Context) ([]training.QualityTraining, error)
	GetBySlugFn func(ctx context.Context, slug string) (*training.QualityTraining, error)
	DeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeTrainingService) List(ctx context.Context) ([]training.QualityTraining, error) {
	return f.ListFn(ctx)
}
func (f *fakeTrainingService) GetBySlug(ctx context.Context, slug string) (*training.QualityTraining, error) {
	return f.GetBySlugFn(ctx, slug)
}
func (f *fakeTrainingService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func setupRouter(svc training.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	h := training.NewHandler(svc, zap.NewNop())
	training.RegisterRoutes(r.Group("/api"), h)
	r.POST("/api/admin/quality-training", h.Create)
	r.DELETE("/api/admin/quality-training/:id", h.Delete)
	return r
}

func TestHandler_List(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		r := setupRouter(&fakeTrainingService{
			ListFn: func(ctx context.Context) ([]training.QualityTraining, error) { return nil, nil },
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-training", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})

	t.Run("store down still returns data", func(t *testing.T) {
		r := setupRouter(&fakeTrainingService{
			ListFn: func(ctx context.Context) ([]training.QualityTraining, error) {
				return nil, apperror.ErrUnavailable
			},
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-training", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[]`)
	})
}

func TestHandler_GetBySlug(t *testing.T) {
	r := setupRouter(&fakeTrainingService{
		GetBySlugFn: func(ctx context.Context, slug string) (*training.QualityTraining, error) {
			if slug == "call-opening" {
				return &training.QualityTraining{Title: "Call Opening", Slug: slug}, nil
			}
			return nil, trainingerrors.ErrTrainingNotFound
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-training/call-opening", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Call Opening"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quality-training/ghost", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateRequiresTitle(t *testing.T) {
	r := setupRouter(&fakeTrainingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/quality-training", strings.NewReader(`{"description":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_Delete(t *testing.T) {
	r := setupRouter(&fakeTrainingService{
		DeleteFn: func(ctx context.Context, id string) error { return nil },
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/quality-training/abc", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}
