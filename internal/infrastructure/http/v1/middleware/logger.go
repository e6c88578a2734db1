package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// Logger injects the application logger into the request context and emits
// one access log line per request.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := logger.WithLogger(c.Request.Context(), log)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.Last().Error())
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error(c.Request.Context(), "request failed", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn(c.Request.Context(), "request rejected", fields...)
		default:
			logger.Info(c.Request.Context(), "request handled", fields...)
		}
	}
}
