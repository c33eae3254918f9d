package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIdempotency(t *testing.T) {
	newRouter := func(rdbHandler gin.HandlerFunc, calls *int) *gin.Engine {
		r := gin.New()
		r.POST("/api/feedback", rdbHandler, func(c *gin.Context) {
			*calls++
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
		return r
	}

	const cacheKey = "idemp:/api/feedback:192.0.2.1:key-1"

	t.Run("first request runs handler and stores response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(Idempotency(rdb, zap.NewNop()), &calls)

		payload, _ := json.Marshal(cachedResponse{Status: http.StatusOK, Body: json.RawMessage(`{"ok":true}`)})
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, idempotencyTTL).SetVal("OK")
		mock.ExpectDel(cacheKey + ":lock").SetVal(1)

		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replays stored response", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(Idempotency(rdb, zap.NewNop()), &calls)

		payload, _ := json.Marshal(cachedResponse{Status: http.StatusOK, Body: json.RawMessage(`{"ok":true}`)})
		mock.ExpectGet(cacheKey).SetVal(string(payload))

		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		assert.Equal(t, 0, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate is rejected", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		r := newRouter(Idempotency(rdb, zap.NewNop()), &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", idempotencyLockTTL).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/api/feedback", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		req.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("no header passes through", func(t *testing.T) {
		rdb, _ := redismock.NewClientMock()
		calls := 0
		r := newRouter(Idempotency(rdb, zap.NewNop()), &calls)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/feedback", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, calls)
	})
}
