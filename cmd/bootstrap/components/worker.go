package components

import (
	"context"

	"enroll-ledger/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewNotificationDispatcher,
	),
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, dispatcher *worker.NotificationDispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return dispatcher.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			return dispatcher.Stop()
		},
	})
}
