package components

import (
	"enroll-ledger/internal/infra/checkout"
	"enroll-ledger/internal/infra/readstore"
	"enroll-ledger/internal/infra/uow"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/usecase/commands"
	"enroll-ledger/internal/usecase/queries"
	"enroll-ledger/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	uowModule,
	readstoreModule,
	cacheModule,
)

var uowModule = fx.Provide(
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewSectionReadStore,
			fx.As(new(queries.SectionReadStore)),
		),
		fx.Annotate(
			readstore.NewWaitlistReadStore,
			fx.As(new(queries.WaitlistReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		fx.Annotate(
			func(client *redis.Client, cfg config.Config) *checkout.SessionCache {
				return checkout.NewSessionCache(client, cfg.Checkout)
			},
			fx.As(new(commands.SessionCache)),
		),
	),
)
