package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/opticore/optipos/internal/infrastructure/localstore"
)

func idempotencyRouter() (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	calls := 0
	r := gin.New()
	r.POST("/checkout", Idempotency(localstore.NewMemoryIdempotencyStore()), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"invoice": calls})
	})
	return r, &calls
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	r, calls := idempotencyRouter()

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	r.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, *calls)

	// The duplicate submit replays the stored body without re-running the
	// handler.
	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "key-1")
	r.ServeHTTP(second, req)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIdempotencyWithoutKeyRunsEveryTime(t *testing.T) {
	r, calls := idempotencyRouter()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/checkout", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyDistinctKeys(t *testing.T) {
	r, calls := idempotencyRouter()

	for _, key := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, key)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyInFlightDuplicateGetsConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int64
	entered := make(chan struct{})
	release := make(chan struct{})
	r := gin.New()
	r.POST("/checkout", Idempotency(localstore.NewMemoryIdempotencyStore()), func(c *gin.Context) {
		atomic.AddInt64(&calls, 1)
		close(entered)
		<-release
		c.JSON(http.StatusCreated, gin.H{"invoice": "inv-1"})
	})

	first := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set(IdempotencyKeyHeader, "k1")
		r.ServeHTTP(first, req)
		close(done)
	}()
	<-entered

	// The double-tap arrives while the sale outcome is still unknown. It
	// must not look like a successful replay.
	second := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "k1")
	r.ServeHTTP(second, req)
	assert.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))

	close(release)
	<-done
	assert.Equal(t, http.StatusCreated, first.Code)

	// Once the outcome is stored the same key replays it.
	third := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "k1")
	r.ServeHTTP(third, req)
	assert.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, "true", third.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), third.Body.String())
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestIdempotencyDoesNotReplayFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calls := 0
	r := gin.New()
	r.POST("/checkout", Idempotency(localstore.NewMemoryIdempotencyStore()), func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "Insufficient stock"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"invoice": "inv-2"})
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "k1")
	r.ServeHTTP(first, req)
	assert.Equal(t, http.StatusUnprocessableEntity, first.Code)

	// A rejected checkout frees the key; retrying after fixing the cart
	// runs the handler again instead of replaying the rejection.
	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.Header.Set(IdempotencyKeyHeader, "k1")
	r.ServeHTTP(second, req)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 2, calls)
}
