package commerce

import (
	"context"

	"luna-storefront/internal/usecase"
)

type CheckoutGateway struct {
	client *Client
}

func NewCheckoutGateway(client *Client) *CheckoutGateway {
	return &CheckoutGateway{client: client}
}

var _ usecase.CheckoutGateway = (*CheckoutGateway)(nil)

type orderLinePayload struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type submitOrderPayload struct {
	Lines          []orderLinePayload `json:"items"`
	ShippingMethod string             `json:"shipping_method"`
	CouponCode     string             `json:"coupon_code,omitempty"`
	PaymentMethod  string             `json:"payment_method"`
	Name           string             `json:"shipping_name"`
	Phone          string             `json:"shipping_phone"`
	Address        string             `json:"shipping_address"`
	City           string             `json:"shipping_city"`
	Zip            string             `json:"shipping_zip"`
	Country        string             `json:"shipping_country"`
	Subtotal       string             `json:"subtotal"`
	Discount       string             `json:"coupon_discount"`
	ShippingCost   string             `json:"shipping_cost"`
	PayAmount      string             `json:"pay_amount"`
}

type submitOrderResponse struct {
	OrderNumber string `json:"order_number"`
}

func (g *CheckoutGateway) SubmitOrder(ctx context.Context, userID int64, sub usecase.OrderSubmission) (string, error) {
	lines := make([]orderLinePayload, 0, len(sub.Lines))
	for _, l := range sub.Lines {
		lines = append(lines, orderLinePayload{
			ProductID: l.ProductID,
			Title:     l.Title,
			Price:     l.UnitPrice.String(),
			Quantity:  l.Quantity,
		})
	}

	payload := submitOrderPayload{
		Lines:          lines,
		ShippingMethod: sub.ShippingMethod,
		CouponCode:     sub.VoucherCode,
		PaymentMethod:  sub.PaymentMethod,
		Name:           sub.Address.Name,
		Phone:          sub.Address.Phone,
		Address:        sub.Address.Address,
		City:           sub.Address.City,
		Zip:            sub.Address.Zip,
		Country:        sub.Address.Country,
		Subtotal:       sub.Subtotal.String(),
		Discount:       sub.Discount.String(),
		ShippingCost:   sub.ShippingCost.String(),
		PayAmount:      sub.GrandTotal.String(),
	}

	var resp submitOrderResponse
	if err := g.client.post(ctx, userID, "/orders", payload, &resp); err != nil {
		return "", err
	}
	return resp.OrderNumber, nil
}

func (g *CheckoutGateway) ClearCart(ctx context.Context, userID int64) error {
	return g.client.post(ctx, userID, "/cart/clear", struct{}{}, nil)
}
