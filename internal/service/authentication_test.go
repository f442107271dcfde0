package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	findActiveUser = store.FindActiveUser
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	countTopics = store.CountTopics
	topTopics = store.TopTopics
	countTopicsByCategory = store.CountTopicsByCategory
	topicCreationTimes = store.TopicCreationTimes
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NoError(t, ComparePassword(hash, pwd))
	require.Error(t, ComparePassword(hash, "other"))

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, _ := HashPassword("pw")
	u := model.User{PasswordHash: hash}
	require.NoError(t, AuthenticateUser(u, "pw"))
	require.ErrorIs(t, AuthenticateUser(u, "bad"), ErrInvalidCredentials)
	require.ErrorIs(t, AuthenticateUser(model.User{}, ""), ErrInvalidCredentials)
}

func TestLogin(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	users := map[string]model.User{
		"alice":           {ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: hash, Role: model.RoleAdmin, IsActive: true},
		"bob@example.com": {ID: "u2", Username: "bob", Email: "bob@example.com", PasswordHash: hash, Role: model.RoleStudent, IsActive: true},
	}
	findActiveUser = func(_ context.Context, _ database.DB, identifier string) (*model.User, error) {
		u, ok := users[identifier]
		if !ok {
			// 停用的使用者同樣查無資料
			return nil, store.ErrNotFound
		}
		return &u, nil
	}

	t.Run("valid credentials keep stored role in token", func(t *testing.T) {
		for identifier, want := range users {
			u, err := Login(context.Background(), nil, identifier, "correct horse")
			require.NoError(t, err)
			require.Equal(t, want.ID, u.ID)

			tok, err := IssueAccessToken(*u, "s", time.Minute)
			require.NoError(t, err)
			claims, err := VerifyAccessToken(tok, "s")
			require.NoError(t, err)
			require.Equal(t, want.Role, claims.Role)
			require.Equal(t, want.Username, claims.Username)
		}
	})

	t.Run("invalid combinations are indistinguishable", func(t *testing.T) {
		for _, tc := range []struct{ identifier, password string }{
			{"alice", "wrong"},
			{"nobody", "correct horse"},
			{"carol-inactive", "correct horse"},
			{"", ""},
		} {
			u, err := Login(context.Background(), nil, tc.identifier, tc.password)
			require.Nil(t, u)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			require.Equal(t, "invalid credentials", err.Error())
		}
	})

	t.Run("storage error is not a credential error", func(t *testing.T) {
		findActiveUser = func(context.Context, database.DB, string) (*model.User, error) {
			return nil, errors.New("connection refused")
		}
		_, err := Login(context.Background(), nil, "alice", "correct horse")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := IssueAccessToken(model.User{}, "", time.Minute)
	require.Error(t, err)

	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	tok, err := IssueAccessToken(model.User{ID: "u5", Role: model.RoleFaculty, Username: "fay"}, "s", 7*24*time.Hour)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil },
		jwt.WithTimeFunc(func() time.Time { return fixed }))
	require.NoError(t, err)
	require.Equal(t, "u5", claims.ID)
	require.Equal(t, "u5", claims.Subject)
	require.Equal(t, model.RoleFaculty, claims.Role)
	require.Equal(t, "fay", claims.Username)
	require.Equal(t, fixed.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	_, err := VerifyAccessToken("abc", "")
	require.Error(t, err)

	_, err = VerifyAccessToken("invalid", "s")
	require.Error(t, err)

	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone, "s")
	require.Error(t, err)

	// 不同密鑰簽發
	other, _ := IssueAccessToken(model.User{ID: "u1"}, "other", time.Minute)
	_, err = VerifyAccessToken(other, "s")
	require.Error(t, err)

	// 過期
	expired, _ := IssueAccessToken(model.User{ID: "u1"}, "s", time.Minute)
	timeNow = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = VerifyAccessToken(expired, "s")
	require.Error(t, err)
	timeNow = time.Now

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: jwt.MapClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever", "s")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	tok, _ := IssueAccessToken(model.User{ID: "u3", Role: model.RoleAdmin}, "s", time.Minute)
	claims, err := VerifyAccessToken(tok, "s")
	require.NoError(t, err)
	require.Equal(t, "u3", claims.ID)
	require.Equal(t, model.RoleAdmin, claims.Role)
}
