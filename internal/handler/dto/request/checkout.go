package request

import (
	"time"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/usecase"
)

type CartLineRequest struct {
	ProductID string      `json:"product_id" binding:"required"`
	Title     string      `json:"title"`
	Price     money.Money `json:"price"`
	Quantity  int         `json:"quantity" binding:"required,gt=0"`
	Image     string      `json:"image,omitempty"`
}

type VoucherRequest struct {
	Code       string     `json:"code" binding:"required"`
	Kind       string     `json:"kind" binding:"omitempty,oneof=percent flat"`
	Value      float64    `json:"value" binding:"gte=0"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

type QuoteRequest struct {
	Items          []CartLineRequest `json:"items"`
	ShippingMethod string            `json:"shipping_method" binding:"omitempty,oneof=standard express"`
	Voucher        *VoucherRequest   `json:"voucher,omitempty"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	lines := make([]usecase.CartLineInput, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, usecase.CartLineInput{
			ProductID: item.ProductID,
			Title:     item.Title,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
			ImageRef:  item.Image,
		})
	}

	var voucher *usecase.VoucherInput
	if r.Voucher != nil {
		voucher = &usecase.VoucherInput{
			Code:       r.Voucher.Code,
			Kind:       r.Voucher.Kind,
			Value:      r.Voucher.Value,
			ValidUntil: r.Voucher.ValidUntil,
		}
	}

	return usecase.QuoteInput{
		Lines:          lines,
		ShippingMethod: r.ShippingMethod,
		Voucher:        voucher,
	}
}

type SubmitOrderRequest struct {
	QuoteRequest
	PaymentMethod string `json:"payment_method" binding:"required,oneof=cod card stripe paypal"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
}

func (r SubmitOrderRequest) ToInput() usecase.SubmitInput {
	return usecase.SubmitInput{
		QuoteInput:    r.QuoteRequest.ToInput(),
		PaymentMethod: r.PaymentMethod,
		Address: usecase.DeliveryAddress{
			Name:    r.Name,
			Phone:   r.Phone,
			Address: r.Address,
			City:    r.City,
			Zip:     r.Zip,
			Country: r.Country,
		},
	}
}
