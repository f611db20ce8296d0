package app

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/caen"
	"github.com/TirlaP/lista-firme-backend/internal/company"
	"github.com/TirlaP/lista-firme-backend/internal/config"
	"github.com/TirlaP/lista-firme-backend/internal/export"
	"github.com/TirlaP/lista-firme-backend/internal/graph"
	"github.com/TirlaP/lista-firme-backend/internal/location"
	"github.com/TirlaP/lista-firme-backend/internal/middleware"
)

// moduleDeps exposes the services some callers need after registration,
// like the warm-up step.
type moduleDeps struct {
	caenService     caen.Service
	locationService location.Service
	companyService  company.Service
}

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	appCache cache.Cache,
	cfg *config.Config,
) (*moduleDeps, error) {
	// --- Repositories ---
	companyRepo := company.NewRepository(gormDB)
	caenRepo := caen.NewRepository(gormDB)
	locationRepo := location.NewRepository(gormDB)

	// --- Services ---
	caenService := caen.NewService(caenRepo, appCache)
	locationService := location.NewService(locationRepo, appCache)
	companyService := company.NewService(companyRepo, caenService, locationService, appCache)
	exportService := export.NewService(companyService)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	caenHandler := caen.NewHandler(caenService)
	locationHandler := location.NewHandler(locationService)
	exportHandler := export.NewHandler(
		exportService,
		export.NewQuota(rdb, cfg.Export.DailyQuota),
		export.Limits{
			BatchSize: cfg.Export.BatchSize,
			MaxRows:   cfg.Export.MaxRows,
			PlanRows:  cfg.Export.PlanRows,
		},
	)

	// --- Plan gate for exports ---
	enforcer, err := middleware.NewEnforcer(cfg.Auth.ModelPath, cfg.Auth.PolicyPath)
	if err != nil {
		return nil, err
	}

	// --- Routes ---
	v1 := router.Group("/v1",
		middleware.RequestID(),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
	)
	{
		company.RegisterRoutes(v1, companyHandler)
		caen.RegisterRoutes(v1, caenHandler)
		location.RegisterRoutes(v1, locationHandler)
		export.RegisterRoutes(v1, exportHandler,
			middleware.Auth(cfg.Auth.JWTSecret),
			middleware.PlanGate(enforcer, "export", "run"),
			middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst),
		)
	}

	// --- GraphQL ---
	resolver := graph.NewResolver(companyService, locationService, exportService, cfg.Export.MaxRows)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, err
	}
	graph.RegisterRoutes(router.Group("", middleware.RequestID()), graph.NewHandler(schema))

	return &moduleDeps{
		caenService:     caenService,
		locationService: locationService,
		companyService:  companyService,
	}, nil
}
