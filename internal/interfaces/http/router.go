// Package http wires the admin HTTP surface: generation triggers and a
// health probe. All state-changing routes identify their caller through the
// X-Actor header; the use case layer decides whether that actor may run
// generation.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fiscalis/internal/application/generation/usecases"
	"fiscalis/internal/interfaces/http/handlers"
	"fiscalis/internal/interfaces/http/middleware"
	"fiscalis/internal/shared/config"
	"fiscalis/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
	db     *gorm.DB
	logger logger.Interface
}

func NewRouter(
	cfg *config.ServerConfig,
	db *gorm.DB,
	runManualUC *usecases.RunManualGenerationUseCase,
	newBusinessUC *usecases.GenerateForNewBusinessUseCase,
	catalogChangeUC *usecases.RegenerateOnCatalogChangeUseCase,
	log logger.Interface,
) *Router {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))

	r := &Router{
		engine: engine,
		db:     db,
		logger: log,
	}

	generationHandler := handlers.NewGenerationHandler(runManualUC, newBusinessUC, catalogChangeUC, log)
	r.registerRoutes(generationHandler)

	return r
}

func (r *Router) registerRoutes(generationHandler *handlers.GenerationHandler) {
	r.engine.GET("/healthz", r.healthCheck)

	v1 := r.engine.Group("/api/v1")
	{
		generation := v1.Group("/generation")
		{
			generation.POST("/run", generationHandler.RunGeneration)
			generation.POST("/businesses/:id", generationHandler.GenerateForBusiness)
			generation.POST("/catalog-changed", generationHandler.CatalogChanged)
		}
	}
}

func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Handler exposes the underlying engine for the HTTP server.
func (r *Router) Handler() http.Handler {
	return r.engine
}
