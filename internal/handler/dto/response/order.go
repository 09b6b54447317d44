package response

import (
	"log/slog"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/order"

	"github.com/jinzhu/copier"
)

type OrderLineItemResponse struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Variant string      `json:"variant,omitempty"`
	Qty     int         `json:"qty"`
	Price   money.Money `json:"price"`
}

type OrderShippingResponse struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

type OrderPaymentResponse struct {
	Method      string `json:"method"`
	BillingSame bool   `json:"billing_same"`
}

type OrderPricesResponse struct {
	Currency string      `json:"currency"`
	Subtotal money.Money `json:"subtotal"`
	Shipping money.Money `json:"shipping"`
	Discount money.Money `json:"discount"`
	Tax      money.Money `json:"tax"`
	Total    money.Money `json:"total"`
}

type OrderTrackingResponse struct {
	Carrier string `json:"carrier"`
	Code    string `json:"code"`
	ETA     string `json:"eta"`
	URL     string `json:"url,omitempty"`
}

type OrderResponse struct {
	ID          string                  `json:"id"`
	OrderNumber string                  `json:"order_number"`
	Date        string                  `json:"date"`
	Status      string                  `json:"status"`
	StepIndex   int                     `json:"step_index"`
	Timeline    []string                `json:"timeline"`
	Items       []OrderLineItemResponse `json:"items"`
	Shipping    OrderShippingResponse   `json:"shipping"`
	Payment     OrderPaymentResponse    `json:"payment"`
	Prices      OrderPricesResponse     `json:"prices"`
	Tracking    OrderTrackingResponse   `json:"tracking"`
}

func FromOrder(o order.Order) OrderResponse {
	resp := OrderResponse{
		Timeline: order.Timeline[:],
		Items:    []OrderLineItemResponse{},
	}
	if err := copier.Copy(&resp, o); err != nil {
		slog.Error("failed to map order response", "error", err)
	}
	return resp
}
