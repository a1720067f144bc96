package components

import (
	"enroll-ledger/internal/pkg/clock"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/pkg/jwt"
	"enroll-ledger/internal/usecase"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/internal/usecase/queries"
	"enroll-ledger/internal/usecase/shared"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewSectionCommands,
		commands.NewReconcileCommands,
		func(uow shared.UnitOfWork, cache commands.SessionCache, cfg config.Config, clk clock.Clock) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(uow, cache, cfg.Checkout, clk)
		},
		// Waitlist commands double as the repairer behind waitlist reads
		fx.Annotate(
			commands.NewWaitlistCommands,
			fx.As(new(commands.WaitlistCommands)),
			fx.As(new(queries.WaitlistRepairer)),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewSectionQueries,
		queries.NewWaitlistQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		func(jwtService *jwt.Service) usecase.TokenValidator {
			return usecase.NewTokenValidator(jwtService)
		},
	),
)
