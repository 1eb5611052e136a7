//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/jwt"
	"elearning-storefront/internal/pkg/session"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, sess session.Session) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(sess)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, sess session.Session) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(sess)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
