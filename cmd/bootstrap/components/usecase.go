package components

import (
	"luna-storefront/internal/domain/order"
	"luna-storefront/internal/pkg/clock"
	"luna-storefront/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		order.NewNormalizer,
		usecase.NewCheckoutUseCase,
		usecase.NewLedgerService,
		usecase.NewOrderQueries,
		usecase.NewTokenValidator,
	),
)
