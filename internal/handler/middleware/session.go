package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"elearning-storefront/internal/domain/access"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/cookie"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

type SessionMiddleware struct {
	tokenValidator usecase.TokenValidator
	publicBaseURL  string
}

func NewSessionMiddleware(tokenValidator usecase.TokenValidator, cfg config.ServerConfig) *SessionMiddleware {
	return &SessionMiddleware{
		tokenValidator: tokenValidator,
		publicBaseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// LoadSession attaches the caller's session when a valid token is present.
// An invalid or expired token is treated as no session; the gate decides what that means.
func (m *SessionMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSession(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			c.Next()
			return
		}

		sess, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Debug("session token rejected", "error", err.Error(), "path", c.Request.URL.Path)
			c.Next()
			return
		}

		c.Set(ctxSessionKey, sess)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

// Gate applies the route access policy. It must run after LoadSession.
func (m *SessionMiddleware) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		decision := access.Evaluate(access.Request{
			Path:        c.Request.URL.Path,
			OriginalURL: m.publicBaseURL + c.Request.URL.RequestURI(),
			HasSession:  ok,
			Role:        sess.Role,
		})

		switch decision.Outcome {
		case access.Redirect:
			c.Redirect(http.StatusFound, decision.Location)
			c.Abort()
		case access.Deny:
			httperr.Fail(c, decision.Status, decision.Message, denyCode(decision.Status))
		default:
			c.Next()
		}
	}
}

// RequireSession guards a single route outside the gated prefixes.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSession(c); !ok {
			httperr.Fail(c, http.StatusUnauthorized, "Unauthorized", denyCode(http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}

func denyCode(status int) string {
	if status == http.StatusForbidden {
		return "FORBIDDEN"
	}
	return "UNAUTHORIZED"
}
