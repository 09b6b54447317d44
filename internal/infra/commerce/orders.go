package commerce

import (
	"context"
	"net/url"

	"luna-storefront/internal/usecase"
)

type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

var _ usecase.OrderGateway = (*OrderGateway)(nil)

// OrderDetails deliberately decodes into an untyped map: order payloads come
// in several schema generations and the normalizer owns making sense of them.
func (g *OrderGateway) OrderDetails(ctx context.Context, userID int64, number string) (map[string]any, error) {
	var raw map[string]any
	if err := g.client.get(ctx, userID, "/orders/"+url.PathEscape(number), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
