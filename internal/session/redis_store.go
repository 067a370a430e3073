package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "session:"

func Key(id string) string {
	return keyPrefix + id
}

type Option func(*redisStore)

// WithIDFunc replaces the uuid session id generator.
func WithIDFunc(fn func() string) Option {
	return func(s *redisStore) { s.newID = fn }
}

// WithNow replaces the clock used for record timestamps and token expiry.
func WithNow(fn func() time.Time) Option {
	return func(s *redisStore) {
		s.now = fn
		s.codec.now = fn
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *redisStore) {
		if logger != nil {
			s.logger = logger.Named("session.store")
		}
	}
}

type redisStore struct {
	rdb    redis.Cmdable
	codec  *TokenCodec
	ttl    time.Duration
	newID  func() string
	now    func() time.Time
	logger *zap.Logger
}

func NewRedisStore(rdb redis.Cmdable, codec *TokenCodec, ttl time.Duration, opts ...Option) Store {
	s := &redisStore{
		rdb:    rdb,
		codec:  codec,
		ttl:    ttl,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: zap.L().Named("session.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *redisStore) Create(ctx context.Context, userID uint, username string) (*Session, string, error) {
	now := s.now()
	sess := &Session{
		ID:        s.newID(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := s.codec.Issue(sess)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, "", fmt.Errorf("encode session: %w", err)
	}

	if err := s.rdb.Set(ctx, Key(sess.ID), string(payload), s.ttl).Err(); err != nil {
		s.logger.Error("session save failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	return sess, token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (*Session, error) {
	claims, err := s.codec.Parse(token)
	if err != nil {
		return nil, err
	}

	raw, err := s.rdb.Get(ctx, Key(claims.SessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("corrupt session record", zap.String("session_id", claims.SessionID), zap.Error(err))
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	sid, err := s.codec.SessionID(token)
	if err != nil {
		return nil
	}

	if err := s.rdb.Del(ctx, Key(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
