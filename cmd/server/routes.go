package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-modakk/modakk-backend/internal/cache"
	"github.com/dev-modakk/modakk-backend/internal/config"
	"github.com/dev-modakk/modakk-backend/internal/handler"
	"github.com/dev-modakk/modakk-backend/internal/identifier"
	"github.com/dev-modakk/modakk-backend/internal/middleware"
	"github.com/dev-modakk/modakk-backend/internal/repository"
	"github.com/dev-modakk/modakk-backend/internal/service"
	"github.com/dev-modakk/modakk-backend/internal/validator"
)

// jsonBodyLimit caps JSON request bodies.
const jsonBodyLimit = 1 << 20

type stores struct {
	giftBoxes  repository.GiftBoxRepository
	carousels  repository.CarouselRepository
	importRuns repository.ImportRunRepository
}

func newRouter(
	cfg *config.Config,
	st stores,
	ids *identifier.Generator,
	browseCache cache.BrowseCache,
	healthHandler *handler.HealthHandler,
) *gin.Engine {
	// Initialize validator
	v := validator.NewValidator()

	// Initialize services
	giftBoxService := service.NewGiftBoxService(st.giftBoxes, ids, v, browseCache)
	importService := service.NewImportService(st.giftBoxes, st.importRuns, ids, v, browseCache,
		cfg.ImportBatchSize, cfg.ImportConcurrency)
	carouselService := service.NewCarouselService(st.carousels, st.importRuns, v)

	// Initialize handlers
	responder := handler.Responder{ExposeErrors: cfg.IsDevelopment()}
	giftBoxHandler := handler.NewGiftBoxHandler(giftBoxService, responder)
	importHandler := handler.NewImportHandler(importService, responder)
	exportHandler := handler.NewExportHandler(giftBoxService, responder)
	carouselHandler := handler.NewCarouselHandler(carouselService, responder)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Metrics())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	jsonLimit := middleware.BodyLimit(jsonBodyLimit)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		boxes := v1.Group("/kidsgiftboxes")
		{
			boxes.GET("", giftBoxHandler.List)
			boxes.POST("", jsonLimit, giftBoxHandler.Create)
			boxes.GET("/browse", giftBoxHandler.Browse)
			boxes.GET("/export", exportHandler.StreamExport)
			boxes.POST("/bulkimport", middleware.BodyLimit(cfg.ImportMaxFileBytes), importHandler.BulkImport)
			boxes.GET("/bulkimport/template", importHandler.Template)
			boxes.GET("/:id", giftBoxHandler.Get)
			boxes.PUT("/:id", jsonLimit, giftBoxHandler.Update)
			boxes.DELETE("/:id", giftBoxHandler.Delete)
			boxes.POST("/:id/images", jsonLimit, giftBoxHandler.AddImages)
			boxes.PUT("/:id/images", jsonLimit, giftBoxHandler.ReplaceImages)
			boxes.DELETE("/:id/images", jsonLimit, giftBoxHandler.RemoveImages)
		}

		v1.GET("/imports/:id", importHandler.GetImport)

		carousel := v1.Group("/config/carousel")
		{
			carousel.GET("", carouselHandler.Get)
			carousel.POST("", jsonLimit, carouselHandler.Create)
			carousel.PUT("", jsonLimit, carouselHandler.Put)
			carousel.POST("/import", middleware.BodyLimit(cfg.CarouselMaxBytes), carouselHandler.Import)
		}
	}

	return router
}
