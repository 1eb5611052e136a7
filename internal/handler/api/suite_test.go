//go:build unit

package api_test

import (
	"net/http"
	"time"

	"elearning-storefront/internal/handler"
	"elearning-storefront/internal/handler/api"
	"elearning-storefront/internal/handler/middleware"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/pkg/cookie"
	"elearning-storefront/internal/pkg/errs"
	"elearning-storefront/internal/pkg/session"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/tests/common/builder"
	commandsmock "elearning-storefront/tests/mock/commands"
	queriesmock "elearning-storefront/tests/mock/queries"
	usecasemock "elearning-storefront/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// routerSuite mounts every handler on the production router so the session
// loader and the access gate run in front of each request.
type routerSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cfg      config.Config
	sessions map[string]session.Session

	mockTokens       *usecasemock.MockTokenValidator
	mockAuthCmds     *commandsmock.MockAuthCommands
	mockOrderCmds    *commandsmock.MockOrderCommands
	mockPaymentCmds  *commandsmock.MockPaymentCommands
	mockExamFileCmds *commandsmock.MockExamFileCommands
	mockUserQ        *queriesmock.MockUserQueries
	mockCatalogQ     *queriesmock.MockCatalogQueries
	mockCouponQ      *queriesmock.MockCouponQueries
	mockOrderQ       *queriesmock.MockOrderQueries
	mockExamFileQ    *queriesmock.MockExamFileQueries
	mockEnrollmentQ  *queriesmock.MockEnrollmentQueries

	// couponRPS and couponBurst size the coupon limiter; zero means generous.
	couponRPS   float64
	couponBurst int
}

func (s *routerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockCtrl = gomock.NewController(s.T())
	s.sessions = make(map[string]session.Session)

	s.mockTokens = usecasemock.NewMockTokenValidator(s.mockCtrl)
	s.mockAuthCmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockOrderCmds = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockPaymentCmds = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.mockExamFileCmds = commandsmock.NewMockExamFileCommands(s.mockCtrl)
	s.mockUserQ = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.mockCatalogQ = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockCouponQ = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.mockOrderQ = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.mockExamFileQ = queriesmock.NewMockExamFileQueries(s.mockCtrl)
	s.mockEnrollmentQ = queriesmock.NewMockEnrollmentQueries(s.mockCtrl)

	s.mockTokens.EXPECT().ValidateToken(gomock.Any()).DoAndReturn(func(token string) (session.Session, error) {
		sess, ok := s.sessions[token]
		if !ok {
			return session.Session{}, errs.New("token is invalid")
		}
		return sess, nil
	}).AnyTimes()

	s.cfg = testConfig(s.T().TempDir())

	rps, burst := s.couponRPS, s.couponBurst
	if rps == 0 {
		rps, burst = 1000, 1000
	}

	uploads := commands.NewUploadSettings(s.cfg.Upload, time.Minute)

	s.router = gin.New()
	handler.NewRouter(s.router, s.cfg, handler.Handlers{
		Auth:       api.NewAuthHandler(s.mockAuthCmds, s.mockUserQ, s.cfg),
		Catalog:    api.NewCatalogHandler(s.mockCatalogQ),
		Coupon:     api.NewCouponHandler(s.mockCouponQ),
		Order:      api.NewOrderHandler(s.mockOrderCmds, s.mockOrderQ),
		Payment:    api.NewPaymentHandler(s.mockPaymentCmds, uploads),
		ExamFile:   api.NewExamFileHandler(s.mockExamFileCmds, s.mockExamFileQ, uploads),
		Enrollment: api.NewEnrollmentHandler(s.mockEnrollmentQ),
	}, middleware.NewSessionMiddleware(s.mockTokens, s.cfg.Server), middleware.NewRateLimiter(rps, burst))
}

func (s *routerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// as returns a bearer token that the mocked validator resolves to sess.
func (s *routerSuite) as(sess session.Session) string {
	token := "token-" + uuid.NewString()
	s.sessions[token] = sess
	return token
}

func (s *routerSuite) userToken() (session.Session, string) {
	sess := builder.NewUserBuilder().BuildSession()
	return sess, s.as(sess)
}

func (s *routerSuite) adminToken() (session.Session, string) {
	sess := builder.NewUserBuilder().AsAdmin().BuildSession()
	return sess, s.as(sess)
}

// sessionCookie carries token the way a browser does.
func (s *routerSuite) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.SessionCookieName, Value: token}
}

func testConfig(mediaDir string) config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "8080", PublicBaseURL: "http://localhost:3000"},
		CORS: config.CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: config.LogConfig{
			Level:          "error",
			TimeZone:       "Asia/Bangkok",
			TimeFormat:     time.RFC3339,
			TimeZoneOffset: 7 * 60 * 60,
		},
		JWT:       config.JWTConfig{Secret: "test-secret", Duration: "1h"},
		Cookie:    config.CookieConfig{SameSite: "Lax"},
		Storage:   config.StorageConfig{Provider: "local", LocalDir: mediaDir},
		Upload: config.UploadConfig{
			CheckoutSlipMaxBytes: 2 << 20,
			OrderSlipMaxBytes:    10 << 20,
			ExamFileMaxBytes:     10 << 20,
		},
		RateLimit: config.RateLimitConfig{CouponRPS: 1000, CouponBurst: 1000},
	}
}
