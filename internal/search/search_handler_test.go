package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/search"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeService struct {
	searchFn func(ctx context.Context, query string, limit int) (*search.Result, error)
}

func (f *fakeService) Search(ctx context.Context, query string, limit int) (*search.Result, error) {
	return f.searchFn(ctx, query, limit)
}

func TestHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	var gotQ string
	var gotLimit int
	r := gin.New()
	search.RegisterRoutes(r.Group("/api"), search.NewHandler(&fakeService{
		searchFn: func(ctx context.Context, query string, limit int) (*search.Result, error) {
			gotQ, gotLimit = query, limit
			return &search.Result{Results: []search.Hit{{Type: search.TypeBrand, Title: "Wardah", Link: "/dashboard/wardah"}}, Total: 1}, nil
		},
	}, zap.NewNop()))

	t.Run("passes query and limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=ward&limit=5", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ward", gotQ)
		assert.Equal(t, 5, gotLimit)
		assert.Contains(t, w.Body.String(), `"total":1`)
		assert.Contains(t, w.Body.String(), "/dashboard/wardah")
	})

	t.Run("bad limit falls back to default", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=ward&limit=abc", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, search.DefaultLimit, gotLimit)
	})
}
