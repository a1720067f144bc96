package components

import (
	"enroll-ledger/internal/handler"
	"enroll-ledger/internal/handler/api"
	"enroll-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSectionHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	section *api.SectionHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Section:  section,
		Checkout: checkout,
		Webhook:  webhook,
		Admin:    admin,
	}
}
