package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/aegisx/platform/internal/domain"
	"github.com/aegisx/platform/internal/pkg"
)

// Recovery returns a gin middleware that recovers from panics, logs the
// error with stack trace using slog, and returns the standard error
// envelope with code INTERNAL_ERROR.
//
// This middleware replaces gin.Recovery() so that panics produce the same
// envelope as every other failure and carry the request id in the log.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				stack := debug.Stack()

				logger.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", err),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(stack)),
				)

				c.Abort()
				pkg.ErrorWithStatus(c, http.StatusInternalServerError,
					domain.CodeInternal, "internal server error")
			}
		}()
		c.Next()
	}
}
