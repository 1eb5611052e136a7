//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/tests/common/authtest"
	"elearning-storefront/tests/common/dbtest"
	"elearning-storefront/tests/common/httptest"
	"elearning-storefront/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegisterThenMe() {
	s.Run("register issues a session cookie that resolves to the new user", func() {
		body := request.RegisterRequest{
			Name:            "สมชาย ใจดี",
			Email:           "somchai@example.com",
			Password:        dbtest.TestPassword,
			ConfirmPassword: dbtest.TestPassword,
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
		cookie := httptest.ExtractCookie(rec, "session_token")
		s.Require().NotNil(cookie)

		me := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, []*http.Cookie{cookie}, "")

		var user resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), me, http.StatusOK, &user)
		s.Equal("somchai@example.com", user.Email)
		s.Equal("USER", user.Role)
	})

	s.Run("the same email cannot register twice", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "taken@example.com", "USER")
		body := request.RegisterRequest{
			Name:            "ซ้ำ",
			Email:           "taken@example.com",
			Password:        dbtest.TestPassword,
			ConfirmPassword: dbtest.TestPassword,
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "EMAIL_TAKEN")
	})
}

func (s *authSuite) TestLoginLogout() {
	s.Run("login, me, logout", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "student@example.com", "USER")
		cookie := authtest.LoginUser(s.T(), s.Router, "student@example.com", dbtest.TestPassword)

		me := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil, []*http.Cookie{cookie}, "")
		s.Equal(http.StatusOK, me.Code)

		authtest.LogoutUser(s.T(), s.Router, []*http.Cookie{cookie})
	})

	s.Run("wrong password is rejected", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "student2@example.com", "USER")
		body := request.LoginRequest{Email: "student2@example.com", Password: "not-the-password"}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	})

	s.Run("me without a session is 401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})

	s.Run("logout is gated like the other member APIs", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}
