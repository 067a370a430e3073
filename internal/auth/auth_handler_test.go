package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-ems/internal/auth"
	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/employee"
	"go-ems/internal/session"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/request"
	usererrors "go-ems/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	RegisterFn func(ctx context.Context, req auth.RegisterRequest) error
	LoginFn    func(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error)
	LogoutFn   func(ctx context.Context, token string) error
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return f.RegisterFn(ctx, req)
}
func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error) {
	return f.LoginFn(ctx, req, currentToken)
}
func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.LogoutFn(ctx, token)
}

var testCookie = session.Cookie{Name: "sessionid", MaxAge: time.Hour}

func passThrough(c *gin.Context) { c.Next() }

func setupRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	auth.RegisterRoutes(r.Group("/api"), auth.NewHandler(svc, testCookie), passThrough, passThrough)
	return r
}

func post(r *gin.Engine, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "sessionid" {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Register(t *testing.T) {
	const body = `{
		"username": "alice", "email": "alice@example.com",
		"password": "p1", "password_confirmation": "p1",
		"first_name": "Alice", "last_name": "Smith",
		"phone_number": "555-0100", "address": "1 Main St",
		"company": 1, "department": 2,
		"date_hired": "2024-01-15", "salary": 50000.00
	}`

	t.Run("created", func(t *testing.T) {
		var got auth.RegisterRequest
		r := setupRouter(&fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) error {
				got = req
				return nil
			},
		})

		w := post(r, "/api/register/", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, auth.MessageRegistered, decode(t, w)["message"])
		assert.Equal(t, "alice", got.Username)
		assert.Equal(t, request.PK(2), got.Department)
		assert.Equal(t, employee.Amount("50000.00"), got.Salary)
	})

	t.Run("reference ids sent as strings", func(t *testing.T) {
		var got auth.RegisterRequest
		r := setupRouter(&fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) error {
				got = req
				return nil
			},
		})

		w := post(r, "/api/register/", strings.NewReplacer(
			`"company": 1`, `"company": "1"`,
			`"department": 2`, `"department": "2"`,
		).Replace(body))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, request.PK(1), got.Company)
		assert.Equal(t, request.PK(2), got.Department)
	})

	t.Run("field errors are returned as a map", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			RegisterFn: func(ctx context.Context, req auth.RegisterRequest) error {
				return usererrors.ErrPasswordMismatch
			},
		})

		w := post(r, "/api/register/", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []any{"Passwords do not match"}, decode(t, w)["password_confirmation"])
	})

	t.Run("malformed body", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{})

		w := post(r, "/api/register/", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Malformed request body", decode(t, w)["message"])
	})
}

func TestAuthHandler_Login(t *testing.T) {
	const body = `{"username":"alice","password":"p1"}`

	t.Run("sets the session cookie", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error) {
				assert.Equal(t, "alice", req.Username)
				assert.Empty(t, currentToken)
				return &auth.LoginResult{
					Token:   "tok",
					Profile: &auth.ProfileResponse{ID: 3, Username: "alice", Salary: "50000.00"},
				}, nil
			},
		})

		w := post(r, "/api/login/", body)

		assert.Equal(t, http.StatusOK, w.Code)
		got := decode(t, w)
		assert.Equal(t, "alice", got["username"])
		assert.Equal(t, "50000.00", got["salary"])
		c := sessionCookie(w)
		require.NotNil(t, c)
		assert.Equal(t, "tok", c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("passes the current session for rotation", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error) {
				assert.Equal(t, "old", currentToken)
				return &auth.LoginResult{Token: "new", Profile: &auth.ProfileResponse{}}, nil
			},
		})

		w := post(r, "/api/login/", body, &http.Cookie{Name: "sessionid", Value: "old"})

		assert.Equal(t, "new", sessionCookie(w).Value)
	})

	t.Run("missing profile still sets the cookie", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error) {
				return &auth.LoginResult{Token: "tok"}, autherrors.ErrProfileNotFound
			},
		})

		w := post(r, "/api/login/", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Employee profile not found", decode(t, w)["message"])
		require.NotNil(t, sessionCookie(w))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			LoginFn: func(ctx context.Context, req auth.LoginRequest, currentToken string) (*auth.LoginResult, error) {
				return nil, autherrors.ErrInvalidCredentials
			},
		})

		w := post(r, "/api/login/", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", decode(t, w)["message"])
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("missing password", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{})

		w := post(r, "/api/login/", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode(t, w), "password")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("clears the cookie", func(t *testing.T) {
		var destroyed string
		r := setupRouter(&fakeAuthService{
			LogoutFn: func(ctx context.Context, token string) error {
				destroyed = token
				return nil
			},
		})

		w := post(r, "/api/logout/", "", &http.Cookie{Name: "sessionid", Value: "tok"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, auth.MessageLoggedOut, decode(t, w)["message"])
		assert.Equal(t, "tok", destroyed)
		c := sessionCookie(w)
		require.NotNil(t, c)
		assert.Equal(t, -1, c.MaxAge)
	})

	t.Run("store failure is not surfaced", func(t *testing.T) {
		r := setupRouter(&fakeAuthService{
			LogoutFn: func(ctx context.Context, token string) error {
				return errors.New("redis down")
			},
		})

		w := post(r, "/api/logout/", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
