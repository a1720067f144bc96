package bootstrap

import (
	"context"

	"enroll-ledger/internal/infra/notify"
	"enroll-ledger/internal/pkg/config"
	"enroll-ledger/internal/worker"

	"go.uber.org/fx"
)

var AMQPModule = fx.Module("amqp",
	fx.Provide(
		fx.Annotate(
			NewAMQPPublisher,
			fx.As(new(worker.Publisher)),
		),
	),
)

func NewAMQPPublisher(lc fx.Lifecycle, cfg config.Config) (*notify.Publisher, error) {
	publisher, cleanup, err := notify.NewPublisher(cfg.AMQP)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return publisher, nil
}
