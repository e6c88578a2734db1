// Package handlers implements the v1 HTTP handlers. Handlers parse input,
// call a domain service and render the DTO; errors go to the error middleware
// via c.Error.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/types"
)

// fail records err for the error middleware and stops the handler chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// pathID parses a uuid path parameter.
func pathID(c *gin.Context, name string) (id.ID, error) {
	raw := c.Param(name)
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").
			WithDetail("param", name).
			WithDetail("value", raw)
	}
	return parsed, nil
}

// bodyID parses a uuid taken from a request body field. Binding tags already
// reject malformed ids, but the handlers do not rely on that.
func bodyID(field, raw string) (id.ID, error) {
	parsed, err := id.Parse(raw)
	if err != nil {
		return id.Nil(), apperror.NewValidation("invalid id").
			WithDetail("field", field).
			WithDetail("value", raw)
	}
	return parsed, nil
}

// pathDate parses a yyyy-mm-dd path parameter in the business timezone.
func pathDate(c *gin.Context, name string, loc *time.Location) (time.Time, error) {
	raw := c.Param(name)
	parsed, err := types.ParseDay(raw, loc)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid date, expected YYYY-MM-DD").
			WithDetail("param", name).
			WithDetail("value", raw)
	}
	return parsed, nil
}

// bindJSON binds the request body, translating bind failures into the
// standard error envelope.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperror.NewValidation("invalid request body").WithCause(err)
	}
	return nil
}
