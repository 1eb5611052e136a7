package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"elearning-storefront/internal/handler/api"
	"elearning-storefront/internal/handler/middleware"
	"elearning-storefront/internal/infra/media"
	"elearning-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Catalog    *api.CatalogHandler
	Coupon     *api.CouponHandler
	Order      *api.OrderHandler
	Payment    *api.PaymentHandler
	ExamFile   *api.ExamFileHandler
	Enrollment *api.EnrollmentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, sessionMiddleware *middleware.SessionMiddleware, couponLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, sessionMiddleware)
	setupRoutes(engine, cfg, h, couponLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, sessionMiddleware *middleware.SessionMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(sessionMiddleware.LoadSession())
	engine.Use(sessionMiddleware.Gate())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, couponLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if p := strings.ToLower(cfg.Storage.Provider); p == "" || p == media.ProviderLocal {
		engine.Static(media.LocalPathPrefix, cfg.Storage.LocalDir)
	}

	// Checkout page data; the gate redirects anonymous visitors to login.
	engine.GET("/checkout/:orderId", h.Order.Checkout)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			{Method: http.MethodGet, Path: "/google", Handler: h.Auth.GoogleLogin},
			{Method: http.MethodGet, Path: "/google/callback", Handler: h.Auth.GoogleCallback},
			{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/courses", Handler: h.Catalog.ListCourses},
			{Method: http.MethodGet, Path: "/courses/:id", Handler: h.Catalog.GetCourse},
			{Method: http.MethodGet, Path: "/ebooks", Handler: h.Catalog.ListEbooks},
			{Method: http.MethodGet, Path: "/ebooks/:id", Handler: h.Catalog.GetEbook},
			{Method: http.MethodGet, Path: "/exams", Handler: h.Catalog.ListExams},
			{Method: http.MethodGet, Path: "/exams/:id", Handler: h.Catalog.GetExam},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.ListCategories},

			{Method: http.MethodPost, Path: "/coupons/validate", Handler: h.Coupon.Validate, Mw: []gin.HandlerFunc{couponLimiter.Limit()}},

			{Method: http.MethodPost, Path: "/orders", Handler: h.Order.Create},
			{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},

			{Method: http.MethodPost, Path: "/checkout/:orderId/slip", Handler: h.Payment.UploadCheckoutSlip},
			{Method: http.MethodPost, Path: "/payments/upload-slip", Handler: h.Payment.UploadOrderSlip},

			{Method: http.MethodGet, Path: "/enrollments", Handler: h.Enrollment.List},
			{Method: http.MethodGet, Path: "/my-courses", Handler: h.Enrollment.MyCourses},
		})

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/payments/:id/approve", Handler: h.Payment.Approve},
			{Method: http.MethodPost, Path: "/payments/:id/reject", Handler: h.Payment.Reject},
			{Method: http.MethodPost, Path: "/exam-files", Handler: h.ExamFile.Upload},
			{Method: http.MethodGet, Path: "/exam-files", Handler: h.ExamFile.List},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
