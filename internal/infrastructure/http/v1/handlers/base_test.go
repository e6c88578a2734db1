package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/apperror"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/core/id"
)

func TestBodyID(t *testing.T) {
	known := "018f4a2e-0000-7000-8000-000000000001"

	parsed, err := bodyID("storeId", known)
	require.NoError(t, err)
	assert.Equal(t, id.MustParse(known), parsed)

	_, err = bodyID("storeId", "not-a-uuid")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "storeId", appErr.Details["field"])
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "garbage"}}

	_, err := pathID(c, "id")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "id", appErr.Details["param"])
}

func TestPathDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "date", Value: "2026-03-01"}}

	day, err := pathDate(c, "date", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), day)

	c.Params = gin.Params{{Key: "date", Value: "03/01/2026"}}
	_, err = pathDate(c, "date", time.UTC)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}
