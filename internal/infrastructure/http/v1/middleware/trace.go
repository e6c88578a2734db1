// Package middleware provides the HTTP middleware chain: tracing, request
// logging, panic recovery, error translation and authentication.
package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "github.com/hanjihoon31-beep/erphan-sub000/internal/core/context"
)

const (
	headerRequestID = "X-Request-ID"
)

// Trace attaches a TraceContext to every request. An inbound X-Request-ID is
// honored so the gateway's id survives into the logs; otherwise one is minted.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := appctx.NewTraceContext()
		if reqID := c.GetHeader(headerRequestID); reqID != "" {
			trace.RequestID = reqID
		}

		ctx := appctx.WithTrace(c.Request.Context(), trace)
		c.Request = c.Request.WithContext(ctx)

		c.Header(headerRequestID, trace.RequestID)
		c.Next()
	}
}
