package components

import (
	"elearning-storefront/internal/pkg/clock"
	"elearning-storefront/internal/pkg/config"
	"elearning-storefront/internal/usecase"
	"elearning-storefront/internal/usecase/commands"
	"elearning-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.UploadSettings {
		return commands.NewUploadSettings(cfg.Upload, cfg.Storage.UploadTimeout)
	},
	func(cfg config.Config) queries.BankDisplay {
		return queries.BankDisplay{
			AccountNumber: cfg.Bank.AccountNumber,
			AccountName:   cfg.Bank.AccountName,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewPaymentCommands,
		commands.NewExamFileCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCouponQueries,
		queries.NewEnrollmentQueries,
		queries.NewOrderQueries,
		func(store queries.CatalogReadStore, cfg config.Config) queries.CatalogQueries {
			return queries.NewCatalogQueries(store, cfg.Server.PublicBaseURL)
		},
		func(store queries.CatalogReadStore, cfg config.Config) queries.ExamFileQueries {
			return queries.NewExamFileQueries(store, cfg.Server.PublicBaseURL)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
