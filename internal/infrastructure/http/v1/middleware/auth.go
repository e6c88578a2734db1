package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	appctx "github.com/hanjihoon31-beep/erphan-sub000/internal/core/context"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/auth"
)

// Auth validates the Bearer token and puts the principal into the request
// context.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, apperror.NewUnauthorized("authorization header required"))
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortWithError(c, apperror.NewUnauthorized("bearer token required"))
			return
		}

		user, err := jwtService.ValidateToken(token)
		if err != nil {
			abortWithError(c, apperror.NewUnauthorized("invalid or expired token").WithCause(err))
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin guards management operations. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !appctx.IsAdmin(c.Request.Context()) {
			abortWithError(c, apperror.NewForbidden("administrator role required"))
			return
		}
		c.Next()
	}
}

// abortWithError records the error for ErrorHandler and stops the chain.
func abortWithError(c *gin.Context, err *apperror.AppError) {
	_ = c.Error(err)
	c.Abort()
}
