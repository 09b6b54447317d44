package order

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/pkg/clock"
)

const (
	defaultOrderNumber = "#00000000"
	defaultStatus      = "Processing"
	displayDateLayout  = "Jan 2, 2006"
)

// statusDisplay maps raw upstream statuses to display labels. Unrecognized
// raw statuses pass through verbatim.
var statusDisplay = map[string]string{
	"pending":          "Processing",
	"processing":       "Processing",
	"confirmed":        "Processing",
	"packed":           "Packed",
	"shipped":          "Shipped",
	"out_for_delivery": "Out for delivery",
	"delivered":        "Delivered",
	"completed":        "Delivered",
	"cancelled":        "Cancelled",
}

// statusStep maps the same raw statuses to an index into Timeline. The two
// tables derive independently from the raw status and must be kept in sync
// when the vocabulary changes.
var statusStep = map[string]int{
	"pending":          0,
	"processing":       0,
	"confirmed":        0,
	"packed":           1,
	"shipped":          2,
	"out_for_delivery": 3,
	"delivered":        4,
	"completed":        4,
}

var paymentLabels = map[string]string{
	"cod":    "Cash on Delivery",
	"card":   "Card Payment",
	"stripe": "Stripe",
	"paypal": "PayPal",
}

// formattedAmount matches the upstream's pre-formatted money strings such as
// "BHD 12.500" or "12.500": an optional leading currency code followed by
// the numeric portion.
var formattedAmount = regexp.MustCompile(`^\s*([A-Za-z]{2,4})?\s*([0-9]+(?:\.[0-9]+)?)`)

var rawDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type Normalizer struct {
	clock clock.Clock
}

func NewNormalizer(clk clock.Clock) *Normalizer {
	return &Normalizer{clock: clk}
}

// Normalize builds a canonical Order from an arbitrary raw payload. It is
// total: every field has a default, no input shape can make it fail, and a
// nil or empty payload yields a fully rendered placeholder order.
func (n *Normalizer) Normalize(raw map[string]any) Order {
	if raw == nil {
		raw = map[string]any{}
	}

	status := pickString(raw, "", "status")
	items := extractItems(raw)

	return Order{
		ID:          pickString(raw, "1", "id"),
		OrderNumber: pickString(raw, defaultOrderNumber, "number", "order_number", "orderNumber", "orderNo"),
		Date:        n.displayDate(raw),
		Status:      displayStatus(status),
		StepIndex:   stepIndex(status),
		Items:       items,
		Shipping:    extractShipping(raw),
		Payment:     extractPayment(raw),
		Prices:      extractPrices(raw, items),
		Tracking:    extractTracking(raw),
	}
}

func displayStatus(status string) string {
	if status == "" {
		return defaultStatus
	}
	if display, ok := statusDisplay[strings.ToLower(status)]; ok {
		return display
	}
	return status
}

func stepIndex(status string) int {
	if idx, ok := statusStep[strings.ToLower(status)]; ok {
		return idx
	}
	return 0
}

func (n *Normalizer) displayDate(raw map[string]any) string {
	s := pickString(raw, "", "created_at", "date")
	if s == "" {
		return n.clock.Now().Format(displayDateLayout)
	}
	for _, layout := range rawDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	// unparseable dates pass through rather than erroring
	return s
}

// extractItems tries the known cart encodings in priority order: the
// structured ordered_products map, then a cart field that may be a JSON
// string, an array, or an {items:{...}} map. The first non-empty parse wins;
// total failure degrades to no items.
func extractItems(raw map[string]any) []LineItem {
	if products, ok := raw["ordered_products"].(map[string]any); ok {
		if items := itemsFromMap(products); len(items) > 0 {
			return items
		}
	}

	cart, ok := pick(raw, "cart")
	if !ok {
		return nil
	}
	if encoded, isString := cart.(string); isString {
		var decoded any
		if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
			return nil
		}
		cart = decoded
	}

	switch c := cart.(type) {
	case []any:
		return itemsFromList(c)
	case map[string]any:
		if inner, ok := c["items"]; ok {
			switch entries := inner.(type) {
			case []any:
				return itemsFromList(entries)
			case map[string]any:
				return itemsFromMap(entries)
			}
		}
	}
	return nil
}

func itemsFromList(entries []any) []LineItem {
	items := make([]LineItem, 0, len(entries))
	for i, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, lineItem(m, i))
	}
	return items
}

func itemsFromMap(entries map[string]any) []LineItem {
	items := make([]LineItem, 0, len(entries))
	i := 0
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, lineItem(m, i))
		i++
	}
	return items
}

func lineItem(m map[string]any, idx int) LineItem {
	// some generations nest the product under an "item" key
	if nested, ok := m["item"].(map[string]any); ok {
		merged := make(map[string]any, len(nested)+len(m))
		for k, v := range nested {
			merged[k] = v
		}
		for k, v := range m {
			if k != "item" {
				merged[k] = v
			}
		}
		m = merged
	}

	qty := 1
	if v, ok := pick(m, "quantity", "qty"); ok {
		qty = asInt(v, 1)
	}
	if qty <= 0 {
		qty = 1
	}

	return LineItem{
		ID:      fmt.Sprintf("item-%d-%s", idx, pickString(m, fmt.Sprintf("%d", idx), "product_id", "id")),
		Title:   pickString(m, "Product", "name", "title"),
		Variant: variantLabel(m),
		Qty:     qty,
		Price:   pickMoney(m, "price"),
	}
}

func variantLabel(m map[string]any) string {
	size := pickString(m, "", "size")
	color := pickString(m, "", "color")
	switch {
	case size != "" && color != "":
		return size + " • " + color
	case size != "":
		return size
	default:
		return color
	}
}

// extractPrices prefers the upstream's pre-formatted total/paid_amount over
// raw numeric fields; only when neither is present is the total computed as
// subtotal + shipping + packing + tax - discount. The precedence reflects
// that the upstream's formatted string is authoritative when it exists.
func extractPrices(raw map[string]any, items []LineItem) Prices {
	var subtotal money.Money
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.MulInt(item.Qty))
	}

	shipping := pickMoney(raw, "shipping_cost", "shipping")
	discount := pickMoney(raw, "coupon_discount", "discount")
	tax := pickMoney(raw, "tax")
	packing := pickMoney(raw, "packing_cost", "packing")
	currency := pickString(raw, money.Currency, "currency_sign", "currency_name")

	prices := Prices{
		Currency: currency,
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Tax:      tax,
	}

	if formatted, ok := pick(raw, "total", "paid_amount", "pay_amount"); ok {
		if total, cur, ok := parseFormattedAmount(formatted); ok {
			prices.Total = total
			if cur != "" {
				prices.Currency = cur
			}
			return prices
		}
	}

	prices.Total = subtotal.Add(shipping).Add(packing).Add(tax).Sub(discount)
	return prices
}

// parseFormattedAmount splits a pre-formatted amount into its numeric value
// and optional leading currency code ("BHD 12.500" -> 12.500, "BHD").
func parseFormattedAmount(v any) (money.Money, string, bool) {
	switch amount := v.(type) {
	case float64:
		return money.FromFloat(amount), "", true
	case string:
		groups := formattedAmount.FindStringSubmatch(amount)
		if groups == nil {
			return 0, "", false
		}
		m, err := money.Parse(groups[2])
		if err != nil {
			return 0, "", false
		}
		return m, strings.ToUpper(groups[1]), true
	default:
		return 0, "", false
	}
}

func extractShipping(raw map[string]any) ShippingAddress {
	return ShippingAddress{
		Name:     pickString(raw, "N/A", "shipping_name", "customer_name"),
		Phone:    pickString(raw, "N/A", "shipping_phone", "customer_phone"),
		Address1: pickString(raw, "N/A", "shipping_address", "customer_address"),
		Address2: "",
		City:     pickString(raw, "N/A", "shipping_city", "customer_city"),
		State:    pickString(raw, "", "shipping_state", "customer_state"),
		Zip:      pickString(raw, "N/A", "shipping_zip", "customer_zip"),
		Country:  pickString(raw, "N/A", "shipping_country", "customer_country"),
	}
}

func extractPayment(raw map[string]any) Payment {
	method := pickString(raw, "card", "method", "payment_method")
	label, ok := paymentLabels[strings.ToLower(method)]
	if !ok {
		label = method
	}
	return Payment{Method: label, BillingSame: true}
}

func extractTracking(raw map[string]any) Tracking {
	return Tracking{
		Carrier: pickString(raw, "-", "shipping_title", "carrier"),
		Code:    pickString(raw, "-", "txnid", "tracking_code"),
		ETA:     "-",
		URL:     pickString(raw, "", "tracking_url"),
	}
}
