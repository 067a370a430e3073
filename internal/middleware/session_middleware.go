package middleware

import (
	"errors"
	"strconv"

	"go-ems/internal/session"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionAuth admits a request only when its token resolves to a live
// session in the store. A signed token whose session was destroyed is
// rejected.
func SessionAuth(store session.Store, cookie session.Cookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := cookie.Token(c)
		if token == "" {
			response.Abort(c, apperror.ErrUnauthorized)
			return
		}

		sess, err := store.Resolve(ctx, token)
		if err != nil {
			if !errors.Is(err, session.ErrInvalidToken) && !errors.Is(err, session.ErrSessionNotFound) {
				contextutil.GetLogger(ctx, zap.L()).Error("session lookup failed", zap.Error(err))
			}
			response.Abort(c, apperror.ErrUnauthorized)
			return
		}

		uid := strconv.FormatUint(uint64(sess.UserID), 10)
		ctx = session.WithContext(ctx, sess)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, zap.L()).With(zap.String("user_id", uid)))
		c.Request = c.Request.WithContext(ctx)
		c.Set("user_id", sess.UserID)

		c.Next()
	}
}
