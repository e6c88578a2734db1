// Package v1 wires the HTTP surface: middleware chain, route groups and
// handler registration.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/auth"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/generator"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/cash"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/records/inventory"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/domain/templates"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1/handlers"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/http/v1/middleware"
	"github.com/hanjihoon31-beep/erphan-sub000/internal/infrastructure/storage/postgres"
	"github.com/hanjihoon31-beep/erphan-sub000/pkg/logger"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Logger      *logger.Logger
	Pool        *postgres.Pool
	JWTService  *auth.JWTService
	Templates   *templates.Service
	Inventory   *inventory.Service
	Cash        *cash.Service
	Runner      *generator.Runner
	Location    *time.Location
	Development bool
}

// NewRouter builds the gin engine with the full middleware chain and all v1
// routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.Trace(),
		middleware.Logger(cfg.Logger),
		middleware.ErrorHandler(),
	)

	health := handlers.NewHealthHandler(cfg.Pool)
	router.GET("/health/live", health.Live)
	router.GET("/health/ready", health.Ready)

	templateHandler := handlers.NewTemplateHandler(cfg.Templates)
	recordHandler := handlers.NewRecordHandler(cfg.Inventory, cfg.Runner, cfg.Location)
	cashHandler := handlers.NewCashHandler(cfg.Cash, cfg.Location)

	api := router.Group("/api/v1", middleware.Auth(cfg.JWTService))
	admin := middleware.RequireAdmin()

	tpl := api.Group("/templates")
	{
		tpl.GET("/:storeId", templateHandler.List)
		tpl.POST("", admin, templateHandler.Add)
		tpl.POST("/bulk", admin, templateHandler.BulkAdd)
		tpl.DELETE("/:id", admin, templateHandler.Deactivate)
	}

	inv := api.Group("/inventory-records")
	{
		inv.POST("/generate", admin, recordHandler.Generate)
		inv.GET("/day/:storeId/:date", recordHandler.GetDay)
		inv.GET("/pending", recordHandler.ListPending)
		inv.PUT("/:id", recordHandler.Edit)
		inv.PUT("/:id/submit", recordHandler.Submit)
		inv.PUT("/:id/approve", admin, recordHandler.Approve)
		inv.PUT("/:id/reject", admin, recordHandler.Reject)
		inv.POST("/submit-all/:storeId/:date", recordHandler.SubmitAll)
		inv.POST("/approve-all/:storeId/:date", admin, recordHandler.ApproveAll)
	}

	csh := api.Group("/cash-records")
	{
		csh.GET("/day/:storeId/:date", cashHandler.GetDay)
		csh.PUT("/day/:storeId/:date", cashHandler.Upsert)
		csh.PUT("/:id/morning-check", cashHandler.MorningCheck)
		csh.PUT("/:id/complete", cashHandler.Complete)
	}

	return router
}
