package components

import (
	"luna-storefront/internal/infra/commerce"
	"luna-storefront/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			commerce.NewCheckoutGateway,
			fx.As(new(usecase.CheckoutGateway)),
		),
		fx.Annotate(
			commerce.NewWalletGateway,
			fx.As(new(usecase.WalletGateway)),
		),
		fx.Annotate(
			commerce.NewOrderGateway,
			fx.As(new(usecase.OrderGateway)),
		),
	),
)
