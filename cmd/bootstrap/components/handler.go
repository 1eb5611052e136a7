package components

import (
	"context"

	"elearning-storefront/internal/handler"
	"elearning-storefront/internal/handler/api"
	"elearning-storefront/internal/handler/middleware"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/usecase"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCouponHandler,
		api.NewOrderHandler,
		api.NewPaymentHandler,
		api.NewExamFileHandler,
		api.NewEnrollmentHandler,
		NewHandlers,
		NewSessionMiddleware,
		NewCouponRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth       *api.AuthHandler
	Catalog    *api.CatalogHandler
	Coupon     *api.CouponHandler
	Order      *api.OrderHandler
	Payment    *api.PaymentHandler
	ExamFile   *api.ExamFileHandler
	Enrollment *api.EnrollmentHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:       p.Auth,
		Catalog:    p.Catalog,
		Coupon:     p.Coupon,
		Order:      p.Order,
		Payment:    p.Payment,
		ExamFile:   p.ExamFile,
		Enrollment: p.Enrollment,
	}
}

func NewSessionMiddleware(tv usecase.TokenValidator, cfg config.Config) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(tv, cfg.Server)
}

// NewCouponRateLimiter ties the limiter's eviction loop to the app lifecycle.
func NewCouponRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	limiter := middleware.NewCouponRateLimiter(cfg.RateLimit)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go limiter.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
