package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery returns a gin middleware that recovers from panics, logs the error
// with a stack trace using slog, and returns the standard JSON error envelope:
//
//	{"success": false, "error": {"code": "INTERNAL_SERVER_ERROR", "message": "internal server error"}}
//
// This middleware replaces gin.Recovery() so that panics get structured,
// request-scoped logging.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_SERVER_ERROR",
						"message": "internal server error",
					},
				})
			}
		}()
		c.Next()
	}
}
