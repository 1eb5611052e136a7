package bootstrap

import (
	"context"
	"log/slog"

	"elearning-storefront/internal/infra/cache"
	"elearning-storefront/internal/infra/media"
	"elearning-storefront/internal/infra/oauth"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// InfraModule provides the external services: media host, Redis and Google.
var InfraModule = fx.Options(
	StorageModule,
	CacheModule,
	OAuthModule,
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewMediaStore,
	),
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
	),
)

var OAuthModule = fx.Module("oauth",
	fx.Provide(
		NewOAuthProvider,
	),
)

func NewMediaStore(cfg config.Config, logger *slog.Logger) (shared.MediaStore, error) {
	store, err := media.New(context.Background(), cfg.Storage, cfg.Server.PublicBaseURL)
	if err != nil {
		return nil, err
	}
	logger.Info("media store ready", "provider", cfg.Storage.Provider)
	return store, nil
}

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Cache)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("catalog cache disabled")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewOAuthProvider returns a nil interface when Google sign-in is not configured.
func NewOAuthProvider(cfg config.Config) shared.OAuthProvider {
	if !cfg.OAuth.GoogleEnabled() {
		return nil
	}
	return oauth.NewGoogleProvider(cfg.OAuth)
}
