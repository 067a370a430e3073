package auth

import (
	"net/http"

	"go-ems/internal/session"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	cookie  session.Cookie
	logger  *zap.Logger
}

func NewHandler(s Service, cookie session.Cookie, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookie: cookie, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Info("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Message(c, http.StatusCreated, MessageRegistered)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), req, h.cookie.Token(c))
	if result != nil && result.Token != "" {
		h.cookie.Set(c, result.Token)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result.Profile)
}

// Logout always succeeds from the client's point of view.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), h.cookie.Token(c)); err != nil {
		h.logger.Warn("session not destroyed on logout", zap.Error(err))
	}

	h.cookie.Clear(c)
	response.Message(c, http.StatusOK, MessageLoggedOut)
}
