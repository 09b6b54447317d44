package usecase

import (
	"context"

	"luna-storefront/internal/domain/order"
	"luna-storefront/internal/infra"
	"luna-storefront/internal/pkg/errs"
)

var (
	ErrOrderNotFound    = errs.New("order not found")
	ErrOrderUnavailable = errs.New("order details are temporarily unavailable")
)

type OrderQueries interface {
	// Get fetches the raw upstream payload and returns its canonical
	// projection. Whatever shape the upstream sends back, the caller gets a
	// fully rendered order.
	Get(ctx context.Context, userID int64, number string) (order.Order, error)
}

type orderQueriesImpl struct {
	gateway    OrderGateway
	normalizer *order.Normalizer
}

func NewOrderQueries(gateway OrderGateway, normalizer *order.Normalizer) OrderQueries {
	return &orderQueriesImpl{
		gateway:    gateway,
		normalizer: normalizer,
	}
}

func (q *orderQueriesImpl) Get(ctx context.Context, userID int64, number string) (order.Order, error) {
	raw, err := q.gateway.OrderDetails(ctx, userID, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return order.Order{}, errs.Mark(err, ErrOrderNotFound)
		}
		return order.Order{}, errs.Mark(err, ErrOrderUnavailable)
	}
	return q.normalizer.Normalize(raw), nil
}
