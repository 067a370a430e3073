package health

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db     *sql.DB
	rdb    redis.Cmdable
	logger *zap.Logger
}

func NewHandler(db *sql.DB, rdb redis.Cmdable, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("health.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("health.handler")
	}
	return &Handler{db: db, rdb: rdb, logger: l}
}

// Check reports 200 when both the database and the session store answer.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	status := gin.H{"database": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("database ping failed", zap.Error(err))
		status["database"] = "unavailable"
		code = http.StatusServiceUnavailable
	}
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		h.logger.Warn("redis ping failed", zap.Error(err))
		status["redis"] = "unavailable"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, status)
}

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/healthz", h.Check)
}
