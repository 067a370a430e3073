package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ems/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testTTL    = 2 * time.Hour
	testSID    = "8f14e45f-ceea-4e67-a0e6-6a5c2b1f0a11"
)

type storeDeps struct {
	store session.Store
	codec *session.TokenCodec
	redis redismock.ClientMock
	now   time.Time
}

func setupStore(t *testing.T) *storeDeps {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = rdb.Close() })

	now := time.Now().UTC().Truncate(time.Second)
	codec := session.NewTokenCodec(testSecret)
	store := session.NewRedisStore(rdb, codec, testTTL,
		session.WithIDFunc(func() string { return testSID }),
		session.WithNow(func() time.Time { return now }),
	)

	return &storeDeps{store: store, codec: codec, redis: mock, now: now}
}

func (d *storeDeps) record(t *testing.T) string {
	t.Helper()
	b, err := json.Marshal(session.Session{
		ID:        testSID,
		UserID:    7,
		Username:  "alice",
		CreatedAt: d.now,
		ExpiresAt: d.now.Add(testTTL),
	})
	require.NoError(t, err)
	return string(b)
}

func TestRedisStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("saves record with ttl and signs token", func(t *testing.T) {
		deps := setupStore(t)
		deps.redis.ExpectSet(session.Key(testSID), deps.record(t), testTTL).SetVal("OK")

		sess, token, err := deps.store.Create(ctx, 7, "alice")

		require.NoError(t, err)
		assert.Equal(t, testSID, sess.ID)
		assert.Equal(t, uint(7), sess.UserID)
		assert.NotEmpty(t, token)

		claims, err := deps.codec.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, testSID, claims.SessionID)
		assert.Equal(t, "7", claims.Subject)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("redis failure", func(t *testing.T) {
		deps := setupStore(t)
		deps.redis.ExpectSet(session.Key(testSID), deps.record(t), testTTL).SetErr(errors.New("connection refused"))

		sess, token, err := deps.store.Create(ctx, 7, "alice")

		assert.Error(t, err)
		assert.Nil(t, sess)
		assert.Empty(t, token)
	})
}

func TestRedisStore_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token and live record", func(t *testing.T) {
		deps := setupStore(t)
		deps.redis.ExpectSet(session.Key(testSID), deps.record(t), testTTL).SetVal("OK")
		_, token, err := deps.store.Create(ctx, 7, "alice")
		require.NoError(t, err)

		deps.redis.ExpectGet(session.Key(testSID)).SetVal(deps.record(t))

		sess, err := deps.store.Resolve(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, testSID, sess.ID)
		assert.Equal(t, "alice", sess.Username)
		assert.True(t, sess.ExpiresAt.Equal(deps.now.Add(testTTL)))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("deleted record is unauthenticated", func(t *testing.T) {
		deps := setupStore(t)
		deps.redis.ExpectSet(session.Key(testSID), deps.record(t), testTTL).SetVal("OK")
		_, token, err := deps.store.Create(ctx, 7, "alice")
		require.NoError(t, err)

		deps.redis.ExpectGet(session.Key(testSID)).RedisNil()

		sess, err := deps.store.Resolve(ctx, token)

		assert.ErrorIs(t, err, session.ErrSessionNotFound)
		assert.Nil(t, sess)
	})

	t.Run("tampered token never reaches redis", func(t *testing.T) {
		deps := setupStore(t)
		forged := session.NewTokenCodec("other-secret")
		token, err := forged.Issue(&session.Session{ID: testSID, UserID: 1, CreatedAt: deps.now, ExpiresAt: deps.now.Add(time.Hour)})
		require.NoError(t, err)

		_, err = deps.store.Resolve(ctx, token)

		assert.ErrorIs(t, err, session.ErrInvalidToken)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("empty token", func(t *testing.T) {
		deps := setupStore(t)

		_, err := deps.store.Resolve(ctx, "")

		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})
}

func TestRedisStore_Destroy(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the referenced record", func(t *testing.T) {
		deps := setupStore(t)
		token, err := deps.codec.Issue(&session.Session{ID: testSID, UserID: 7, CreatedAt: deps.now, ExpiresAt: deps.now.Add(testTTL)})
		require.NoError(t, err)

		deps.redis.ExpectDel(session.Key(testSID)).SetVal(1)

		assert.NoError(t, deps.store.Destroy(ctx, token))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("expired token still deletes", func(t *testing.T) {
		deps := setupStore(t)
		past := deps.now.Add(-48 * time.Hour)
		token, err := deps.codec.Issue(&session.Session{ID: testSID, UserID: 7, CreatedAt: past, ExpiresAt: past.Add(time.Hour)})
		require.NoError(t, err)

		deps.redis.ExpectDel(session.Key(testSID)).SetVal(0)

		assert.NoError(t, deps.store.Destroy(ctx, token))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("garbage token is a no-op", func(t *testing.T) {
		deps := setupStore(t)

		assert.NoError(t, deps.store.Destroy(ctx, "not-a-token"))
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})
}

func TestTokenCodec_Expired(t *testing.T) {
	codec := session.NewTokenCodec(testSecret)
	past := time.Now().Add(-time.Hour)
	token, err := codec.Issue(&session.Session{ID: testSID, UserID: 1, CreatedAt: past.Add(-time.Hour), ExpiresAt: past})
	require.NoError(t, err)

	_, err = codec.Parse(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)

	sid, err := codec.SessionID(token)
	assert.NoError(t, err)
	assert.Equal(t, testSID, sid)
}

func TestContext(t *testing.T) {
	_, ok := session.FromContext(context.Background())
	assert.False(t, ok)

	ctx := session.WithContext(context.Background(), &session.Session{ID: testSID, UserID: 3})
	got, ok := session.FromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint(3), got.UserID)
}

func TestCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cookie := session.Cookie{Name: "sessionid", MaxAge: testTTL}

	t.Run("set and clear", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

		cookie.Set(c, "tok")
		cookie.Clear(c)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 2)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.Equal(t, int(testTTL.Seconds()), cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, "", cookies[1].Value)
		assert.Equal(t, -1, cookies[1].MaxAge)
	})

	t.Run("token from cookie then bearer header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", cookie.Token(c))

		c.Request.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", cookie.Token(c))

		c.Request.AddCookie(&http.Cookie{Name: "sessionid", Value: "cookie-token"})
		assert.Equal(t, "cookie-token", cookie.Token(c))
	})
}
