package cookie

import (
	"net/http"
	"time"

	"elearning-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookieName     = "session_token"
	OAuthStateCookieName  = "oauth_state"
	CallbackURLCookieName = "callback_url"

	oauthCookieTTL = 10 * time.Minute

	// negative MaxAge makes gin emit Max-Age=0, which deletes the cookie
	deleteMaxAge = -1
)

func SetSession(c *gin.Context, cfg config.CookieConfig, token string, expiry time.Duration) {
	set(c, cfg, SessionCookieName, token, int(expiry.Seconds()))
}

func ClearSession(c *gin.Context, cfg config.CookieConfig) {
	set(c, cfg, SessionCookieName, "", deleteMaxAge)
}

func GetSession(c *gin.Context) string {
	token, _ := c.Cookie(SessionCookieName)
	return token
}

// SetOAuthState remembers the state nonce and the page to return to while the
// browser is away at the identity provider.
func SetOAuthState(c *gin.Context, cfg config.CookieConfig, state, callbackURL string) {
	set(c, cfg, OAuthStateCookieName, state, int(oauthCookieTTL.Seconds()))
	set(c, cfg, CallbackURLCookieName, callbackURL, int(oauthCookieTTL.Seconds()))
}

// PopOAuthState returns and clears the values stored by SetOAuthState.
func PopOAuthState(c *gin.Context, cfg config.CookieConfig) (state, callbackURL string) {
	state, _ = c.Cookie(OAuthStateCookieName)
	callbackURL, _ = c.Cookie(CallbackURLCookieName)
	set(c, cfg, OAuthStateCookieName, "", deleteMaxAge)
	set(c, cfg, CallbackURLCookieName, "", deleteMaxAge)
	return state, callbackURL
}

func set(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
