package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/domain/store"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for an already-seen key instead of
// re-running the handler. Checkout is mounted behind this so a double-tapped
// submit cannot create two sales. A duplicate arriving while the first
// request is still in flight gets 409 with Retry-After; only successful
// responses become replayable, anything else frees the key for a retry.
// Requests without a key proceed normally.
func Idempotency(keys store.IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "POST" && c.Request.Method != "PUT" && c.Request.Method != "PATCH" {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		state, stored, err := keys.Claim(c.Request.Context(), key, IdempotencyKeyTTL)
		if err != nil {
			// A broken local store must not block sales.
			c.Next()
			return
		}

		switch state {
		case store.ClaimPending:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"message": "A request with this idempotency key is still in progress",
				"error":   "idempotency_key_in_flight",
			})
			return
		case store.ClaimReplay:
			c.Header("X-Idempotency-Replayed", "true")
			c.Data(http.StatusOK, "application/json", stored)
			c.Abort()
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 && blw.body.Len() > 0 {
			_ = keys.StoreResponse(c.Request.Context(), key, blw.body.Bytes(), IdempotencyKeyTTL)
			return
		}
		_ = keys.Release(c.Request.Context(), key)
	}
}
