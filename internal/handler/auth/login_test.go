package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

// helper to build echo context
func newLoginCtx(e *echo.Echo, path, accept, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	login = service.Login
	issueAccessToken = service.IssueAccessToken
}

func userRow(u model.User) database.FakeRow {
	return database.FakeRow{Values: []any{u.ID, u.Username, u.Email, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt}}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "token" {
			return ck
		}
	}
	t.Fatal("token cookie not set")
	return nil
}

var sess = Session{Secret: "s", TTL: 7 * 24 * time.Hour}

func TestLoginHandler(t *testing.T) {
	hash, err := service.HashPassword("pw")
	require.NoError(t, err)
	admin := model.User{ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: hash, Role: model.RoleAdmin, IsActive: true}
	found := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row { return userRow(admin) }}
	missing := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row { return database.FakeRow{Err: pgx.ErrNoRows} }}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e := newEcho()
		e.Binder = errBinder{}
		ctx, rec := newLoginCtx(e, "/login", "", "")
		require.NoError(t, LoginHandler(&database.FakeDB{}, sess)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newLoginCtx(newEcho(), "/login", "", `{"identifier":"alice"}`)
		require.NoError(t, LoginHandler(&database.FakeDB{}, sess)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user, wrong password and storage error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newLoginCtx(newEcho(), "/login", echo.MIMEApplicationJSON, `{"identifier":"nobody","password":"pw"}`)
		require.NoError(t, LoginHandler(missing, sess)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		unknownBody := rec.Body.String()

		ctx, rec = newLoginCtx(newEcho(), "/login", echo.MIMEApplicationJSON, `{"identifier":"alice","password":"nope"}`)
		require.NoError(t, LoginHandler(found, sess)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, unknownBody, rec.Body.String())
		require.Contains(t, unknownBody, "Invalid credentials")
		require.Empty(t, rec.Result().Cookies())

		broken := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return database.FakeRow{Err: errors.New("connection refused")}
		}}
		ctx, rec = newLoginCtx(newEcho(), "/login", echo.MIMEApplicationJSON, `{"identifier":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(broken, sess)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("issue token error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newLoginCtx(newEcho(), "/login", echo.MIMEApplicationJSON, `{"identifier":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(found, Session{TTL: time.Hour})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "Server error")
	})

	t.Run("json success", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newLoginCtx(newEcho(), "/login", "application/json, text/plain", `{"identifier":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(found, sess)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"ok":true,"role":"admin","username":"alice"}`, rec.Body.String())

		ck := sessionCookie(t, rec)
		require.True(t, ck.HttpOnly)
		require.False(t, ck.Secure)
		require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
		require.Equal(t, int((7 * 24 * time.Hour).Seconds()), ck.MaxAge)

		claims, err := service.VerifyAccessToken(ck.Value, "s")
		require.NoError(t, err)
		require.Equal(t, model.RoleAdmin, claims.Role)
		require.Equal(t, "alice", claims.Username)
		require.Equal(t, "u1", claims.ID)
	})

	t.Run("api path returns json without accept header", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newLoginCtx(newEcho(), "/api/auth/login", "", `{"identifier":"alice","password":"pw"}`)
		require.NoError(t, LoginHandler(found, sess)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"ok":true`)
	})

	t.Run("browser form login redirects to role path", func(t *testing.T) {
		t.Cleanup(restore)
		e := newEcho()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("identifier=alice&password=pw"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set(echo.HeaderAccept, "text/html")
		rec := httptest.NewRecorder()
		require.NoError(t, LoginHandler(found, Session{Secret: "s", TTL: time.Hour, Production: true})(e.NewContext(req, rec)))
		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))

		ck := sessionCookie(t, rec)
		require.True(t, ck.Secure)
		require.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	})

	t.Run("inactive user", func(t *testing.T) {
		t.Cleanup(restore)
		login = func(context.Context, database.DB, string, string) (*model.User, error) {
			return nil, service.ErrInvalidCredentials
		}
		ctx, rec := newLoginCtx(newEcho(), "/login", echo.MIMEApplicationJSON, `{"identifier":"carol","password":"pw"}`)
		require.NoError(t, LoginHandler(nil, sess)(ctx))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid credentials")
	})
}

func TestLogoutHandler(t *testing.T) {
	for _, production := range []bool{false, true} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/logout", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, LogoutHandler(Session{Production: production})(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())

		ck := sessionCookie(t, rec)
		require.Empty(t, ck.Value)
		require.True(t, ck.MaxAge < 0)
		require.True(t, ck.HttpOnly)
		require.Equal(t, production, ck.Secure)
	}
}
