package bootstrap

import (
	"luna-storefront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	CommerceModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
