//go:build unit

package pricing_test

import (
	"testing"

	"luna-storefront/internal/domain/money"
	"luna-storefront/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, id string, price money.Money, qty int) pricing.CartLine {
	t.Helper()
	line, err := pricing.NewCartLine(id, "Item "+id, price, qty, "")
	require.NoError(t, err)
	return line
}

func TestComputeTotal(t *testing.T) {
	t.Run("empty cart prices to zero", func(t *testing.T) {
		total := pricing.ComputeTotal(nil, pricing.StandardShipping(), nil)
		assert.True(t, total.Subtotal.IsZero())
		assert.True(t, total.Discount.IsZero())
		assert.True(t, total.GrandTotal.IsZero())
	})

	t.Run("percent voucher over standard shipping", func(t *testing.T) {
		lines := []pricing.CartLine{
			mustLine(t, "p-1", money.FromFils(7500), 2),
			mustLine(t, "p-2", money.FromFils(5000), 1),
		}
		voucher, err := pricing.NewPercentVoucher("SAVE10", 10, nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.StandardShipping(), &voucher)

		assert.Equal(t, int64(20000), total.Subtotal.Fils())
		assert.Equal(t, int64(2000), total.Discount.Fils())
		assert.True(t, total.ShippingCost.IsZero())
		assert.Equal(t, int64(18000), total.GrandTotal.Fils())
	})

	t.Run("oversized flat voucher clamps merchandise, not shipping", func(t *testing.T) {
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(5000), 1)}
		voucher, err := pricing.NewFlatVoucher("FLAT50", money.FromFils(50000), nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.ExpressShipping(), &voucher)

		assert.Equal(t, int64(5000), total.Subtotal.Fils())
		assert.Equal(t, int64(50000), total.Discount.Fils())
		assert.Equal(t, int64(12000), total.GrandTotal.Fils())
	})

	t.Run("percent discount truncates fractional fils", func(t *testing.T) {
		// 3.333 at 10% is 333.3 fils; the extra 0.3 fils is dropped
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(3333), 1)}
		voucher, err := pricing.NewPercentVoucher("SAVE10", 10, nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.StandardShipping(), &voucher)
		assert.Equal(t, int64(333), total.Discount.Fils())
		assert.Equal(t, int64(3000), total.GrandTotal.Fils())
	})

	t.Run("fractional percents discount exactly in fils", func(t *testing.T) {
		// 12.5% resolves to 1250 basis points; 10.000 at that rate is an
		// exact 1.250, with no float residue in the fils amount
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(10000), 1)}
		voucher, err := pricing.NewPercentVoucher("SAVE12.5", 12.5, nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.StandardShipping(), &voucher)
		assert.Equal(t, int64(1250), total.Discount.Fils())
		assert.Equal(t, int64(8750), total.GrandTotal.Fils())
	})

	t.Run("rates that defeat binary floats stay exact", func(t *testing.T) {
		// 0.29 has no exact binary form; multiplying a large subtotal by
		// it lands just under the true product and a truncating float
		// path would lose a full fil. Basis points keep it exact.
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(10_000_000), 1)}
		voucher, err := pricing.NewPercentVoucher("SAVE0.29", 0.29, nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.StandardShipping(), &voucher)
		assert.Equal(t, int64(29000), total.Discount.Fils())
	})

	t.Run("grand total never drops below shipping cost", func(t *testing.T) {
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(100), 1)}
		for pct := 0.0; pct <= 100; pct += 25 {
			voucher, err := pricing.NewPercentVoucher("V", pct, nil)
			require.NoError(t, err)
			total := pricing.ComputeTotal(lines, pricing.ExpressShipping(), &voucher)
			assert.GreaterOrEqual(t, total.GrandTotal.Fils(), total.ShippingCost.Fils())
		}
	})

	t.Run("larger discount never raises the grand total", func(t *testing.T) {
		lines := []pricing.CartLine{
			mustLine(t, "p-1", money.FromFils(11111), 3),
			mustLine(t, "p-2", money.FromFils(250), 2),
		}
		prev := pricing.ComputeTotal(lines, pricing.StandardShipping(), nil).GrandTotal
		for pct := 5.0; pct <= 100; pct += 5 {
			voucher, err := pricing.NewPercentVoucher("V", pct, nil)
			require.NoError(t, err)
			cur := pricing.ComputeTotal(lines, pricing.StandardShipping(), &voucher).GrandTotal
			assert.LessOrEqual(t, cur.Fils(), prev.Fils())
			prev = cur
		}
	})

	t.Run("hundred percent leaves only shipping", func(t *testing.T) {
		lines := []pricing.CartLine{mustLine(t, "p-1", money.FromFils(9999), 1)}
		voucher, err := pricing.NewPercentVoucher("FREE", 100, nil)
		require.NoError(t, err)

		total := pricing.ComputeTotal(lines, pricing.ExpressShipping(), &voucher)
		assert.Equal(t, total.ShippingCost, total.GrandTotal)
	})
}
