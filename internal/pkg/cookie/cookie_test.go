//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elearning-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	c.Request = req
	return c, rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	var found *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			found = ck
		}
	}
	return found
}

func TestSetSession(t *testing.T) {
	c, rec := newContext()

	SetSession(c, config.CookieConfig{}, "tok", 2*time.Hour)

	got := findCookie(rec, SessionCookieName)
	require.NotNil(t, got)
	assert.Equal(t, "tok", got.Value)
	assert.Equal(t, 7200, got.MaxAge)
	assert.True(t, got.HttpOnly)
}

func TestClearSession(t *testing.T) {
	c, rec := newContext()

	ClearSession(c, config.CookieConfig{})

	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
	got := findCookie(rec, SessionCookieName)
	require.NotNil(t, got)
	assert.Empty(t, got.Value)
	assert.Less(t, got.MaxAge, 0)
}

func TestPopOAuthState(t *testing.T) {
	c, rec := newContext(
		&http.Cookie{Name: OAuthStateCookieName, Value: "nonce"},
		&http.Cookie{Name: CallbackURLCookieName, Value: "/courses"},
	)

	state, callback := PopOAuthState(c, config.CookieConfig{})

	assert.Equal(t, "nonce", state)
	assert.Equal(t, "/courses", callback)
	for _, name := range []string{OAuthStateCookieName, CallbackURLCookieName} {
		got := findCookie(rec, name)
		require.NotNil(t, got, name)
		assert.Less(t, got.MaxAge, 0, name)
	}
}
