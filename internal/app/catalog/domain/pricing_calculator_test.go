package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

func money(t *testing.T, numerator, denominator int64) *Money {
	t.Helper()
	m, err := NewMoney(numerator, denominator)
	require.NoError(t, err)
	return m
}

func reconstructedProduct(t *testing.T, id string, basePrice *Money, discount *Discount) *Product {
	t.Helper()
	now := utc(2025, 1, 1)
	return ReconstructProduct(
		id, "USB-C fast charger", "", "cat-accessories", "",
		basePrice, discount, StatusActive, 1, now, now, nil,
		clock.NewMockClock(now),
	)
}

func reconstructedVariant(t *testing.T, id, productID string, adjustment *Money, discount *Discount) *Variant {
	t.Helper()
	now := utc(2025, 1, 1)
	return ReconstructVariant(id, productID, "65W", "CHG-65W", adjustment, discount, 10, now, now)
}

func TestPricingCalculator_EffectiveDiscount(t *testing.T) {
	pc := NewPricingCalculator()
	start := utc(2025, 1, 1)
	end := utc(2025, 1, 31)

	t.Run("active candidate wins over smaller category", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), &start, &end)
		got := pc.EffectiveDiscount(d, mustPercent(t, 5), utc(2025, 1, 15))
		assert.Equal(t, "20", got.String())
	})

	t.Run("expired candidate falls back to category", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), &start, &end)
		got := pc.EffectiveDiscount(d, mustPercent(t, 5), utc(2025, 2, 1))
		assert.Equal(t, "5", got.String())
	})

	t.Run("expired candidate with zero category yields zero", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), &start, &end)
		got := pc.EffectiveDiscount(d, ZeroPercent(), utc(2025, 2, 1))
		assert.True(t, got.IsZero())
	})

	t.Run("larger category wins over active candidate", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 10), &start, &end)
		got := pc.EffectiveDiscount(d, mustPercent(t, 25), utc(2025, 1, 15))
		assert.Equal(t, "25", got.String())
	})

	t.Run("nil candidate uses category", func(t *testing.T) {
		got := pc.EffectiveDiscount(nil, mustPercent(t, 7), utc(2025, 1, 15))
		assert.Equal(t, "7", got.String())
	})
}

func TestPricingCalculator_DiscountedAmount(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("zero percent returns the amount exactly", func(t *testing.T) {
		base := money(t, 19995, 1000) // 19.995, deliberately not minor-unit exact
		got := pc.DiscountedAmount(base, ZeroPercent())
		assert.True(t, got.Equals(base), "no rounding on the no-discount path")
	})

	t.Run("hundred percent yields zero", func(t *testing.T) {
		got := pc.DiscountedAmount(money(t, 19999, 100), mustPercent(t, 100))
		assert.True(t, got.IsZero())
	})

	t.Run("never exceeds the base amount", func(t *testing.T) {
		base := money(t, 19999, 100)
		for p := int64(0); p <= 100; p += 5 {
			got := pc.DiscountedAmount(base, mustPercent(t, p))
			assert.False(t, got.GreaterThan(base), "percent %d", p)
		}
	})

	t.Run("rounds half up to minor unit", func(t *testing.T) {
		// 199.99 * 0.75 = 149.9925 -> 149.99
		got := pc.DiscountedAmount(money(t, 19999, 100), mustPercent(t, 25))
		assert.Equal(t, "149.99", got.String())
	})
}

func TestPricingCalculator_ResolveUnitPrice(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("no variant uses base price and product discount", func(t *testing.T) {
		productDiscount := PermanentDiscount(mustPercent(t, 10))
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), productDiscount)

		price, discount := pc.ResolveUnitPrice(product, nil)

		assert.Equal(t, "100.00", price.String())
		require.NotNil(t, discount)
		assert.Equal(t, "10", discount.Percent().String())
	})

	t.Run("variant adjustment added and variant discount overrides", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), PermanentDiscount(mustPercent(t, 10)))
		variant := reconstructedVariant(t, "var-1", "prod-1", money(t, 2000, 100), PermanentDiscount(mustPercent(t, 30)))

		price, discount := pc.ResolveUnitPrice(product, variant)

		assert.Equal(t, "120.00", price.String())
		require.NotNil(t, discount)
		assert.Equal(t, "30", discount.Percent().String())
	})

	t.Run("variant without discount falls back to product discount", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 5000, 100), PermanentDiscount(mustPercent(t, 15)))
		variant := reconstructedVariant(t, "var-1", "prod-1", money(t, 1000, 100), nil)

		price, discount := pc.ResolveUnitPrice(product, variant)

		assert.Equal(t, "60.00", price.String())
		require.NotNil(t, discount)
		assert.Equal(t, "15", discount.Percent().String())
	})

	t.Run("explicit zero variant discount overrides product discount", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 5000, 100), PermanentDiscount(mustPercent(t, 15)))
		variant := reconstructedVariant(t, "var-1", "prod-1", ZeroMoney(), PermanentDiscount(ZeroPercent()))

		_, discount := pc.ResolveUnitPrice(product, variant)

		require.NotNil(t, discount)
		assert.True(t, discount.Percent().IsZero())
	})

	t.Run("negative adjustment lowers the unit price", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), nil)
		variant := reconstructedVariant(t, "var-1", "prod-1", money(t, -1500, 100), nil)

		price, _ := pc.ResolveUnitPrice(product, variant)
		assert.Equal(t, "85.00", price.String())
	})
}

func TestPricingCalculator_BuildLineItem(t *testing.T) {
	pc := NewPricingCalculator()
	now := utc(2025, 1, 15)

	t.Run("variant discount precedence over product and category", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), PermanentDiscount(mustPercent(t, 10)))
		variant := reconstructedVariant(t, "var-1", "prod-1", money(t, 2000, 100), PermanentDiscount(mustPercent(t, 30)))

		item, err := pc.BuildLineItem(product, variant, mustPercent(t, 5), now)
		require.NoError(t, err)

		assert.Equal(t, "120.00", item.OriginalUnitPrice.String())
		assert.Equal(t, "30", item.Discount.String())
		assert.Equal(t, "84.00", item.UnitPrice.String())
	})

	t.Run("window gating with category fallback", func(t *testing.T) {
		start := utc(2025, 1, 1)
		end := utc(2025, 1, 31)
		discount, _ := NewDiscount(mustPercent(t, 20), &start, &end)
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), discount)

		inWindow, err := pc.BuildLineItem(product, nil, mustPercent(t, 5), utc(2025, 1, 15))
		require.NoError(t, err)
		assert.Equal(t, "20", inWindow.Discount.String())
		assert.Equal(t, "80.00", inWindow.UnitPrice.String())

		afterWindow, err := pc.BuildLineItem(product, nil, mustPercent(t, 5), utc(2025, 2, 1))
		require.NoError(t, err)
		assert.Equal(t, "5", afterWindow.Discount.String())
		assert.Equal(t, "95.00", afterWindow.UnitPrice.String())
	})

	t.Run("active product discount beats smaller category discount", func(t *testing.T) {
		// 199.99 at 25% with a 10% category promo -> 149.99
		start := utc(2025, 1, 15)
		end := utc(2025, 1, 15)
		discount, _ := NewDiscount(mustPercent(t, 25), &start, &end)
		product := reconstructedProduct(t, "prod-1", money(t, 19999, 100), discount)

		item, err := pc.BuildLineItem(product, nil, mustPercent(t, 10), now)
		require.NoError(t, err)

		assert.Equal(t, "25", item.Discount.String())
		assert.Equal(t, "149.99", item.UnitPrice.String())
		assert.Equal(t, "199.99", item.OriginalUnitPrice.String())
	})

	t.Run("no discount leaves unit price exactly equal to original", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 19999, 100), nil)

		item, err := pc.BuildLineItem(product, nil, ZeroPercent(), now)
		require.NoError(t, err)
		assert.True(t, item.UnitPrice.Equals(item.OriginalUnitPrice))
	})

	t.Run("unit price never exceeds original", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 19999, 100), PermanentDiscount(mustPercent(t, 33)))

		item, err := pc.BuildLineItem(product, nil, mustPercent(t, 10), now)
		require.NoError(t, err)
		assert.False(t, item.UnitPrice.GreaterThan(item.OriginalUnitPrice))
	})

	t.Run("identical inputs price identically", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 19999, 100), PermanentDiscount(mustPercent(t, 25)))

		first, err := pc.BuildLineItem(product, nil, mustPercent(t, 10), now)
		require.NoError(t, err)
		second, err := pc.BuildLineItem(product, nil, mustPercent(t, 10), now)
		require.NoError(t, err)

		assert.True(t, first.UnitPrice.Equals(second.UnitPrice))
		assert.True(t, first.OriginalUnitPrice.Equals(second.OriginalUnitPrice))
		assert.True(t, first.Discount.Equals(second.Discount))
	})

	t.Run("nil product is not found", func(t *testing.T) {
		_, err := pc.BuildLineItem(nil, nil, ZeroPercent(), now)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.True(t, IsNotFound(err))
	})

	t.Run("foreign variant is a validation error", func(t *testing.T) {
		product := reconstructedProduct(t, "prod-1", money(t, 10000, 100), nil)
		variant := reconstructedVariant(t, "var-9", "prod-other", ZeroMoney(), nil)

		_, err := pc.BuildLineItem(product, variant, ZeroPercent(), now)
		assert.ErrorIs(t, err, ErrVariantMismatch)
		assert.True(t, IsValidation(err))
	})
}

func TestPricingCalculator_ComputeTotal(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("sums line items with quantities", func(t *testing.T) {
		total, err := pc.ComputeTotal([]TotalLine{
			{UnitPrice: money(t, 8400, 100), Quantity: 2},
			{UnitPrice: money(t, 1999, 100), Quantity: 1},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "187.99", total.String())
	})

	t.Run("adds flat delivery surcharge", func(t *testing.T) {
		total, err := pc.ComputeTotal([]TotalLine{
			{UnitPrice: money(t, 5000, 100), Quantity: 1},
		}, money(t, 799, 100))
		require.NoError(t, err)
		assert.Equal(t, "57.99", total.String())
	})

	t.Run("rounds once at the end, not per item", func(t *testing.T) {
		// Three lines of 19.995: per-item rounding would give 20.00 each and a
		// 60.00 total; the exact sum 59.985 rounds half-up to 59.99.
		line := TotalLine{UnitPrice: money(t, 19995, 1000), Quantity: 1}

		total, err := pc.ComputeTotal([]TotalLine{line, line, line}, nil)
		require.NoError(t, err)
		assert.Equal(t, "59.99", total.String())
	})

	t.Run("empty lines with surcharge", func(t *testing.T) {
		total, err := pc.ComputeTotal(nil, money(t, 799, 100))
		require.NoError(t, err)
		assert.Equal(t, "7.99", total.String())
	})

	t.Run("zero quantity is a validation error", func(t *testing.T) {
		_, err := pc.ComputeTotal([]TotalLine{
			{UnitPrice: money(t, 5000, 100), Quantity: 0},
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.True(t, IsValidation(err))
	})

	t.Run("negative quantity is a validation error", func(t *testing.T) {
		_, err := pc.ComputeTotal([]TotalLine{
			{UnitPrice: money(t, 5000, 100), Quantity: -3},
		}, nil)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("missing unit price is a validation error", func(t *testing.T) {
		_, err := pc.ComputeTotal([]TotalLine{{Quantity: 1}}, nil)
		assert.ErrorIs(t, err, ErrMissingUnitPrice)
	})
}
