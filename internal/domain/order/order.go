// Package order projects heterogeneous upstream order payloads into one
// canonical shape. The upstream has shipped several schema generations
// (different key names, cart encodings and price fields); every screen-facing
// read goes through Normalize so the rest of the system sees exactly one
// Order shape regardless of payload vintage.
package order

import "luna-storefront/internal/domain/money"

// Timeline is the fixed 5-step fulfilment progression rendered on the order
// details screen. StepIndex values index into it.
var Timeline = [5]string{"Ordered", "Packed", "Shipped", "Out for delivery", "Delivered"}

// Order is the canonical, display-ready projection of a raw order payload.
// It is rebuilt from scratch on every normalization and never mutated.
type Order struct {
	ID          string
	OrderNumber string
	Date        string
	Status      string
	StepIndex   int
	Items       []LineItem
	Shipping    ShippingAddress
	Payment     Payment
	Prices      Prices
	Tracking    Tracking
}

type LineItem struct {
	ID      string
	Title   string
	Variant string
	Qty     int
	Price   money.Money
}

type ShippingAddress struct {
	Name     string
	Phone    string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
}

type Payment struct {
	Method      string
	BillingSame bool
}

type Prices struct {
	Currency string
	Subtotal money.Money
	Shipping money.Money
	Discount money.Money
	Tax      money.Money
	Total    money.Money
}

type Tracking struct {
	Carrier string
	Code    string
	ETA     string
	URL     string
}
