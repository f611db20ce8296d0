package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TirlaP/lista-firme-backend/internal/cache"
	"github.com/TirlaP/lista-firme-backend/internal/config"
	"github.com/TirlaP/lista-firme-backend/internal/shared/connection"
)

// BuildApp connects the infrastructure and registers every module on the
// router. Reference data (CAEN codes, locations) is warmed before the
// server starts accepting traffic.
func BuildApp(router *gin.Engine, cfg *config.Config) error {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), 5)
	if err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.Password, 5)
	if err != nil {
		// The in-process cache backend runs without Redis; the quota
		// counter degrades to unlimited.
		if cfg.Cache.Backend == "redis" {
			return err
		}
		zap.L().Warn("redis unavailable, continuing with in-process cache only")
		rdb = nil
	}

	appCache := cache.New(cfg.Cache.Backend, rdb)

	deps, err := registerModules(router, gormDB, rdb, appCache, cfg)
	if err != nil {
		return err
	}

	warmCtx, cancel := context.WithTimeout(context.Background(), cfg.DB.QueryTimeout)
	defer cancel()
	if err := deps.caenService.Warm(warmCtx); err != nil {
		zap.L().Warn("caen warm-up failed", zap.Error(err))
	}
	if err := deps.locationService.Warm(warmCtx); err != nil {
		zap.L().Warn("location warm-up failed", zap.Error(err))
	}

	return nil
}
