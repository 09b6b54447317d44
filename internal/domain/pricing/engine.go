package pricing

import (
	"math"

	"luna-storefront/internal/domain/money"
)

// Total is the derived price breakdown of one checkout. It is computed fresh
// from its inputs and never persisted.
type Total struct {
	Subtotal     money.Money
	Discount     money.Money
	ShippingCost money.Money
	GrandTotal   money.Money
}

// ComputeTotal prices a cart snapshot under the selected shipping option and
// an optional voucher. The discount is computed against the raw subtotal and
// deliberately not clamped on its own; clamping happens only at the
// grand-total step, so the merchandise portion can never go negative but the
// reported discount reflects the voucher's face value.
//
// The function is total over its domain: inputs are validated by the
// CartLine/Voucher constructors, never here.
func ComputeTotal(lines []CartLine, shipping ShippingOption, voucher *Voucher) Total {
	var subtotal money.Money
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}

	var discount money.Money
	if voucher != nil {
		switch voucher.Kind() {
		case VoucherPercent:
			// The rate is rounded to basis points once; from there the
			// discount is pure integer arithmetic over fils, truncating
			// toward zero. Money amounts never pass through a float.
			bps := int64(math.Round(voucher.Percent() * 100))
			discount = money.FromFils(subtotal.Fils() * bps / 10_000)
		case VoucherFlat:
			discount = voucher.FlatAmount()
		}
	}

	merchandise := subtotal.Sub(discount)
	if merchandise.IsNegative() {
		merchandise = 0
	}

	return Total{
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shipping.Cost(),
		GrandTotal:   merchandise.Add(shipping.Cost()),
	}
}
