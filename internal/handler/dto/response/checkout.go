package response

import (
	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/usecase"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Currency       string      `json:"currency"`
	Subtotal       money.Money `json:"subtotal"`
	Discount       money.Money `json:"discount"`
	ShippingCost   money.Money `json:"shipping_cost"`
	GrandTotal     money.Money `json:"grand_total"`
	ShippingMethod string      `json:"shipping_method"`
	ETADaysMin     int         `json:"eta_days_min"`
	ETADaysMax     int         `json:"eta_days_max"`
}

func FromQuote(q usecase.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Currency:       q.Currency,
		Subtotal:       q.Total.Subtotal,
		Discount:       q.Total.Discount,
		ShippingCost:   q.Total.ShippingCost,
		GrandTotal:     q.Total.GrandTotal,
		ShippingMethod: string(q.Shipping.Method()),
		ETADaysMin:     q.Shipping.ETADaysMin(),
		ETADaysMax:     q.Shipping.ETADaysMax(),
	}
}

type SessionResponse struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	State     string    `json:"state"`
	OrderRef  string    `json:"order_ref,omitempty"`
	Failure   string    `json:"failure,omitempty"`
}

func FromSession(v usecase.SessionView) SessionResponse {
	return SessionResponse{
		AttemptID: v.AttemptID,
		State:     string(v.State),
		OrderRef:  v.OrderRef,
		Failure:   v.Failure,
	}
}

type DismissResponse struct {
	Navigate bool `json:"navigate"`
}
