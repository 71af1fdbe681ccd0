package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/finmatrix/cmd/docs"
	portssvc "github.com/SscSPs/finmatrix/internal/core/ports/services"
	"github.com/SscSPs/finmatrix/internal/middleware"
	"github.com/SscSPs/finmatrix/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	ctx context.Context,
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	limiterStore, err := middleware.NewLimiterStore(ctx, cfg.RedisAddress)
	if err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register public authentication routes
	if err := registerAuthRoutes(r, cfg, services.User, limiterStore); err != nil {
		return err
	}

	if err := setupAPIV1Routes(r, cfg, services, limiterStore); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterStore limiter.Store,
) error {
	importLimiter, err := middleware.NewLimiter(cfg.ImportRateLimit, limiterStore)
	if err != nil {
		return err
	}

	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerChartRoutes(v1, services.Reporting)

	client := v1.Group("/clients/:client_id")
	registerJournalRoutes(client, services.Journal, importLimiter, cfg.MaxImportBytes)
	registerReportingRoutes(client, services.Reporting, cfg.ReportCurrency)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
