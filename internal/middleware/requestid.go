package middleware

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"regexp"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const (
	requestIDHeader     = "X-Request-ID"
	requestIDContextKey = "request_id"
	requestIDLength     = 16 // 16 bytes = 32 hex chars
)

var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

var requestIDFallbackCounter atomic.Uint64

// RequestIDConfig controls request-id reuse behavior.
type RequestIDConfig struct {
	// TrustUpstream reuses a valid incoming X-Request-ID instead of
	// generating a fresh one. Leave false unless a trusted proxy sits
	// in front of this server.
	TrustUpstream bool
}

// RequestID returns a gin middleware that assigns a unique request ID to each
// request. Upstream X-Request-ID values are not trusted; a new ID is generated
// for every request.
//
// The request ID is:
//   - Stored in gin.Context under the key "request_id"
//   - Set as the X-Request-ID response header
//   - Stored in the Go context via logger.WithContextAttrs for structured logging
func RequestID() gin.HandlerFunc {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig returns a gin middleware that assigns request IDs based
// on the given config.
func RequestIDWithConfig(cfg RequestIDConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if cfg.TrustUpstream {
			if upstreamID := c.GetHeader(requestIDHeader); isValidRequestID(upstreamID) {
				id = upstreamID
			}
		}

		if id == "" {
			id = generateRequestID()
		}

		c.Set(requestIDContextKey, id)
		c.Header(requestIDHeader, id)

		ctx := logger.WithContextAttrs(c.Request.Context(), slog.String("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func isValidRequestID(id string) bool {
	return requestIDPattern.MatchString(id)
}

// GetRequestID extracts the request ID from the gin.Context.
// Returns an empty string if no request ID is set.
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get(requestIDContextKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// generateRequestID produces a random hex string of requestIDLength*2
// characters. If the random source fails, it falls back to a timestamp plus
// a process-wide counter so IDs stay unique.
func generateRequestID() string {
	b := make([]byte, requestIDLength)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], requestIDFallbackCounter.Add(1))
	}
	return hex.EncodeToString(b)
}
