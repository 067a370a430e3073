package app

import (
	"fmt"

	"go-ems/internal/auth"
	"go-ems/internal/company"
	"go-ems/internal/config"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/health"
	"go-ems/internal/middleware"
	"go-ems/internal/session"
	"go-ems/internal/shared/database"
	"go-ems/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RegisterModules wires repositories, services and handlers and mounts
// their routes.
func RegisterModules(router *gin.Engine, cfg *config.Config, a *App, logger *zap.Logger) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql.DB: %w", err)
	}

	// --- Repositories ---
	userRepo := user.NewRepository(a.DB)
	companyRepo := company.NewRepository(a.DB)
	departmentRepo := department.NewRepository(a.DB)
	employeeRepo := employee.NewRepository(a.DB)

	// --- Sessions ---
	sessionStore := session.NewRedisStore(
		a.Redis,
		session.NewTokenCodec(cfg.Session.Secret),
		cfg.Session.TTL,
		session.WithLogger(logger),
	)
	cookie := session.Cookie{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.TTL,
		Secure: cfg.Session.Secure || cfg.IsProduction(),
	}

	var tx database.Transactor
	if cfg.Registration.UseTransaction {
		tx = database.NewTransactor(a.DB)
	}

	// --- Services ---
	authService := auth.NewService(auth.Deps{
		Transactor:  tx,
		Users:       userRepo,
		Employees:   employeeRepo,
		Companies:   companyRepo,
		Departments: departmentRepo,
		Sessions:    sessionStore,
		Audit:       a.Audit,
	}, logger)
	companyService := company.NewService(companyRepo, logger)
	departmentService := department.NewService(departmentRepo, companyRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cookie, logger)
	companyHandler := company.NewHandler(companyService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	healthHandler := health.NewHandler(sqlDB, a.Redis, logger)

	// --- Routes Registration ---
	router.Use(middleware.ContextLogger(logger))
	health.RegisterRoutes(router, healthHandler)

	authenticated := middleware.SessionAuth(sessionStore, cookie)
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler,
			middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.LoginRPS), cfg.RateLimit.LoginBurst),
			middleware.RateLimitByIP(rate.Limit(cfg.RateLimit.RegisterRPS), cfg.RateLimit.RegisterBurst),
		)
		company.RegisterRoutes(api, companyHandler, authenticated)
		department.RegisterRoutes(api, departmentHandler, authenticated)
	}

	return nil
}
