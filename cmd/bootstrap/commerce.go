package bootstrap

import (
	"log/slog"

	"luna-storefront/internal/infra/commerce"
	"luna-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var CommerceModule = fx.Module("commerce",
	fx.Provide(
		NewCommerceClient,
	),
)

func NewCommerceClient(cfg config.Config, logger *slog.Logger) *commerce.Client {
	return commerce.NewClient(cfg.Upstream, logger)
}
