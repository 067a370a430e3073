package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go-ems/internal/config"
	"go-ems/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StartHTTPServer serves router until ctx is cancelled or SIGINT/SIGTERM
// arrives, then drains in-flight requests within cfg.ShutdownTimeout.
func StartHTTPServer(
	ctx context.Context,
	router *gin.Engine,
	cfg config.AppConfig,
	auditLogger audit.Logger,
) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	zap.L().Info("Shutdown signal received", zap.Error(context.Cause(ctx)))
	auditLogger.Log(context.Background(), audit.Entry{
		Action:  audit.ActionServerShutdown,
		Message: "Server is shutting down",
		Meta:    map[string]any{"port": cfg.Port},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("Forced shutdown", zap.Error(err))
		return err
	}
	zap.L().Info("Server exited gracefully")
	return nil
}
