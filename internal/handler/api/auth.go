package api

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	reqdto "elearning-storefront/internal/handler/dto/request"
	resdto "elearning-storefront/internal/handler/dto/response"
	"elearning-storefront/internal/handler/httperr"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/cookie"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds          commands.AuthCommands
	q             queries.UserQueries
	cookieCfg     config.CookieConfig
	publicBaseURL string
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:          cmds,
		q:             q,
		cookieCfg:     cfg.Cookie,
		publicBaseURL: strings.TrimRight(cfg.Server.PublicBaseURL, "/"),
	}
}

// @Summary Register
// @Description Create a credentials account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} httperr.Response{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "สมัครสมาชิกไม่สำเร็จ", "INVALID_REQUEST")
		return
	}
	result, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetSession(c, h.cookieCfg, result.Token, result.ExpiresIn)
	httperr.Created(c, resdto.FromAuthResult(result))
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} httperr.Response{data=resdto.AuthResponse}
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetSession(c, h.cookieCfg, result.Token, result.ExpiresIn)
	httperr.OK(c, resdto.FromAuthResult(result))
}

// @Summary Start Google sign-in
// @Tags auth
// @Param callbackUrl query string false "Where to return after sign-in"
// @Success 302 "Redirect to Google"
// @Failure 404 {object} httperr.Response
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := newState()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	authURL, err := h.cmds.GoogleAuthURL(state)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetOAuthState(c, h.cookieCfg, state, h.safeCallback(c.Query("callbackUrl")))
	c.Redirect(http.StatusFound, authURL)
}

// @Summary Google sign-in callback
// @Tags auth
// @Param state query string true "State nonce"
// @Param code query string true "Authorization code"
// @Success 302 "Redirect to the stored callback URL"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	state, callbackURL := cookie.PopOAuthState(c, h.cookieCfg)
	if state == "" || c.Query("state") != state {
		slog.Warn("google callback state mismatch", "client_ip", c.ClientIP())
		c.Redirect(http.StatusFound, loginError("oauth_state"))
		return
	}
	if c.Query("error") != "" || c.Query("code") == "" {
		c.Redirect(http.StatusFound, loginError("oauth_denied"))
		return
	}

	result, err := h.cmds.GoogleCallback(c.Request.Context(), c.Query("code"))
	if err != nil {
		slog.Warn("google sign-in failed", "error", err.Error())
		c.Redirect(http.StatusFound, loginError(strings.ToLower(httperr.Lookup(err).Code)))
		return
	}
	cookie.SetSession(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.Redirect(http.StatusFound, h.safeCallback(callbackURL))
}

// @Summary Get current user
// @Tags auth
// @Produce json
// @Success 200 {object} httperr.Response{data=resdto.UserResponse}
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrentUser(c.Request.Context(), sess.UserID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	httperr.OK(c, resdto.FromUserView(view))
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSession(c, h.cookieCfg)
	httperr.OK(c, nil)
}

// safeCallback keeps redirects on this site: relative paths and our own origin only.
func (h *AuthHandler) safeCallback(raw string) string {
	if raw == "" {
		return "/"
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") && !strings.HasPrefix(raw, "/\\") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || h.publicBaseURL == "" {
		return "/"
	}
	if u.Scheme+"://"+u.Host == h.publicBaseURL {
		return raw
	}
	return "/"
}

func loginError(code string) string {
	return "/login?" + url.Values{"error": {code}}.Encode()
}

func newState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
