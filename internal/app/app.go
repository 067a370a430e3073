package app

import (
	"errors"
	"fmt"

	"go-ems/internal/config"
	"go-ems/internal/shared/audit"
	"go-ems/internal/shared/connection"
	"go-ems/migrations"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	DB    *gorm.DB
	Redis *redis.Client
	Audit audit.Logger
}

// BuildApp connects the stores, applies migrations and mounts every module
// on router.
func BuildApp(cfg *config.Config, router *gin.Engine, logger *zap.Logger) (*App, error) {
	db, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}

	if cfg.Database.RunMigrations {
		if err := migrations.Migrate(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("migrations applied")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	a := &App{DB: db, Redis: rdb, Audit: audit.NewZapLogger(logger)}
	if err := RegisterModules(router, cfg, a, logger); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
