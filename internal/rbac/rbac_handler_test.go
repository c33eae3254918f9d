package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// =========================================
// Fake Service
// =========================================

type fakeService struct {
	Service
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Role == "admin", nil
}

func (f *fakeService) ListPermissions(ctx context.Context) ([]RolePermission, error) {
	return nil, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&fakeService{}, zap.NewNop())
	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	t.Run("allowed", func(t *testing.T) {
		body, _ := json.Marshal(domain.EnforceRequest{Role: "admin", Resource: "catalog", Action: "write"})
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true,"data":{"allowed":true}}`, w.Body.String())
	})

	t.Run("validation error", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"role":"admin"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestHandler_ListPermissionsEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&fakeService{}, zap.NewNop())
	router := gin.New()
	router.GET("/rbac/permissions", handler.ListPermissions)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/rbac/permissions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"data":[]}`, w.Body.String())
}
