package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndResolve(t *testing.T) {
	m := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := m.UserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestManager_ExpiredToken(t *testing.T) {
	m := New("test-secret", -time.Minute) // already expired
	ctx := context.Background()

	token, err := m.Issue(ctx, 42)
	assert.NoError(t, err)

	_, err = m.UserID(ctx, token)
	assert.Error(t, err)
}

func TestManager_WrongSecret(t *testing.T) {
	m1 := New("secret1", time.Minute)
	m2 := New("secret2", time.Minute)
	ctx := context.Background()

	token, err := m1.Issue(ctx, 7)
	assert.NoError(t, err)

	_, err = m2.UserID(ctx, token)
	assert.Error(t, err)
}

func TestManager_InvalidToken(t *testing.T) {
	m := New("secret", time.Minute)

	_, err := m.UserID(context.Background(), "invalid.token.string")
	assert.Error(t, err)
}

func TestManager_TokenFromRequest(t *testing.T) {
	m := New("secret", time.Minute)
	ctx := context.Background()

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.TokenFromRequest(ctx, req)
		assert.ErrorIs(t, err, ErrNoSession)
	})

	t.Run("WithCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "sometoken"})

		token, err := m.TokenFromRequest(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, "sometoken", token)
	})
}

func TestManager_CookieRoundTrip(t *testing.T) {
	m := New("secret", time.Hour)
	ctx := context.Background()

	token, err := m.Issue(ctx, 1)
	assert.NoError(t, err)

	rr := httptest.NewRecorder()
	m.SetCookie(rr, token)

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	got, err := m.TokenFromRequest(ctx, req)
	assert.NoError(t, err)

	userID, err := m.UserID(ctx, got)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), userID)
}

func TestManager_ClearCookie(t *testing.T) {
	m := New("secret", time.Hour)

	rr := httptest.NewRecorder()
	m.ClearCookie(rr)

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
