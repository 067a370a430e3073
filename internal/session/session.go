package session

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidToken    = errors.New("session: invalid token")
	ErrSessionNotFound = errors.New("session: not found")
)

// Session is the server-side record stored in Redis. The cookie only carries
// a signed reference to ID.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

//go:generate mockgen -source=session.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	// Create persists a new record and returns it with its signed token.
	Create(ctx context.Context, userID uint, username string) (*Session, string, error)
	// Resolve verifies the token and loads the record it references.
	Resolve(ctx context.Context, token string) (*Session, error)
	// Destroy deletes the referenced record. Unknown or malformed tokens are
	// not an error.
	Destroy(ctx context.Context, token string) error
}

type contextKey struct{}

func WithContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
