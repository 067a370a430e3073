package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type Cookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

func (c Cookie) Set(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c Cookie) Clear(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token reads the session token from the cookie, then from a Bearer header.
func (c Cookie) Token(ctx *gin.Context) string {
	if v, err := ctx.Cookie(c.Name); err == nil && v != "" {
		return v
	}

	header := ctx.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
