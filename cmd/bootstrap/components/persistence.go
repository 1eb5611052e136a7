package components

import (
	"elearning-storefront/internal/infra/cache"
	"elearning-storefront/internal/infra/query"
	"elearning-storefront/internal/infra/readstore"
	"elearning-storefront/internal/infra/uow"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		readstore.NewCatalogReadStore,
		NewCatalogReadStore,
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Enrollment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EnrollmentReadQueries)),
		),
		fx.Annotate(
			readstore.NewEnrollmentReadStore,
			fx.As(new(queries.EnrollmentReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Repositories are built per transaction inside the unit of work.
var writeModule = fx.Module("persistence/write",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}

// NewCatalogReadStore puts the Redis cache in front of Postgres when a client
// is configured.
func NewCatalogReadStore(pg *readstore.CatalogReadStore, client *redis.Client, cfg config.Config) queries.CatalogReadStore {
	if client == nil {
		return pg
	}
	return cache.NewCatalogReadStore(pg, client, cfg.Cache.CatalogTTL)
}
