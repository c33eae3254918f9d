package sop_test

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/sop"
	soperrors "github.com/ccparagoncorp/customercare-web-sub001/internal/sop/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSOPService struct {
	sop.Service

	ListCategoriesFn func(ctx context.Context) ([]sop.Category, error)
	GetVariantFn     func(ctx context.Context, category, sopSlug, variant string) (*sop.Variant, error)
}

func (f *fakeSOPService) ListCategories(ctx context.Context) ([]sop.Category, error) {
	return f.ListCategoriesFn(ctx)
}
func (f *fakeSOPService) GetVariant(ctx context.Context, category, sopSlug, variant string) (*sop.Variant, error) {
	return f.GetVariantFn(ctx, category, sopSlug, variant)
}

func setupRouter(svc sop.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	r := gin.New()
	h := sop.NewHandler(svc, zap.NewNop())
	sop.RegisterRoutes(r.Group("/api"), h)
	r.POST("/api/admin/sop-categories", h.CreateCategory)
	return r
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func TestHandler_ListCategories(t *testing.T) {
	t.Run("unavailable store answers empty data", func(t *testing.T) {
		r := setupRouter(&fakeSOPService{
			ListCategoriesFn: func(ctx context.Context) ([]sop.Category, error) {
				return nil, apperror.FromStore(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, nil)
			},
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sop/kategoris", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.JSONEq(t, `[]`, string(body.Data))
	})

	t.Run("nil list renders as empty array", func(t *testing.T) {
		r := setupRouter(&fakeSOPService{
			ListCategoriesFn: func(ctx context.Context) ([]sop.Category, error) { return nil, nil },
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sop/kategoris", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.JSONEq(t, `[]`, string(body.Data))
	})
}

func TestHandler_GetVariant(t *testing.T) {
	var got []string
	r := setupRouter(&fakeSOPService{
		GetVariantFn: func(ctx context.Context, category, sopSlug, variant string) (*sop.Variant, error) {
			got = []string{category, sopSlug, variant}
			return nil, soperrors.ErrVariantNotFound
		},
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sop/complaint/refund/marketplace", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, []string{"complaint", "refund", "marketplace"}, got)
}

func TestHandler_CreateCategoryValidation(t *testing.T) {
	r := setupRouter(&fakeSOPService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sop-categories", strings.NewReader(`{"description":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, apperror.CodeValidation, body.Error.Code)
	assert.Contains(t, body.Error.Details["errors"], "name")
}
