package domain

import (
	"time"
)

// PricingCalculator is a domain service for price and discount calculations.
//
// It is the single source of truth for the discount precedence and window-gating
// rules shared by the product detail view, order creation, and the repair booking
// flow. All methods are pure: `now` is always supplied by the caller, so the same
// inputs always price the same way, including historical order reconstruction.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// LineItem is the priced result for one product/variant selection.
type LineItem struct {
	ProductID         string
	VariantID         string
	UnitPrice         *Money
	OriginalUnitPrice *Money
	Discount          Percent
}

// TotalLine is one entry of a total computation: an already-resolved unit price
// and a quantity.
type TotalLine struct {
	UnitPrice *Money
	Quantity  int64
}

// EffectiveDiscount resolves the percentage actually applied for a candidate
// discount and a category-wide discount at the given instant.
//
// The candidate counts only while its window is active; an inactive candidate is
// treated as zero for the comparison but never suppresses the category discount.
// The result is the larger of the two.
func (pc *PricingCalculator) EffectiveDiscount(candidate *Discount, category Percent, now time.Time) Percent {
	active := ZeroPercent()
	if candidate != nil && candidate.ActiveAt(now) {
		active = candidate.Percent()
	}
	if category.GreaterThan(active) {
		return category
	}
	return active
}

// DiscountedAmount applies a discount percentage to a base amount:
// base * (1 - percent/100), clamped to be >= 0, rounded to the minor unit with
// round-half-up. A zero percent returns the base amount exactly, so that the
// no-discount path never introduces rounding drift.
func (pc *PricingCalculator) DiscountedAmount(base *Money, percent Percent) *Money {
	if percent.IsZero() {
		return base.Copy()
	}

	discounted := base.Subtract(base.MultiplyByRat(percent.Multiplier()))
	if discounted.IsNegative() {
		discounted = ZeroMoney()
	}
	return discounted.RoundMinorUnit()
}

// ResolveUnitPrice computes the pre-discount unit price for a product with an
// optionally selected variant, and selects which discount applies to it.
//
// The variant's price adjustment is added to the product's base price. A variant
// discount, when present, entirely replaces the product discount (it never
// stacks); a variant without a discount of its own falls back to the product's.
func (pc *PricingCalculator) ResolveUnitPrice(product *Product, variant *Variant) (*Money, *Discount) {
	price := product.BasePrice()
	if variant != nil {
		price = price.Add(variant.PriceAdjustment())
	}

	discount := product.Discount()
	if variant != nil && variant.Discount() != nil {
		discount = variant.Discount()
	}
	return price, discount
}

// BuildLineItem produces the chargeable unit price, the original (pre-discount)
// unit price, and the effective discount percentage for one selection.
//
// The caller is responsible for having fetched product and variant; this method
// only checks referential validity between the two.
func (pc *PricingCalculator) BuildLineItem(product *Product, variant *Variant, category Percent, now time.Time) (*LineItem, error) {
	if product == nil {
		return nil, ErrProductNotFound
	}
	if variant != nil && variant.ProductID() != product.ID() {
		return nil, ErrVariantMismatch
	}

	original, candidate := pc.ResolveUnitPrice(product, variant)
	effective := pc.EffectiveDiscount(candidate, category, now)
	unit := pc.DiscountedAmount(original, effective)

	item := &LineItem{
		ProductID:         product.ID(),
		UnitPrice:         unit,
		OriginalUnitPrice: original,
		Discount:          effective,
	}
	if variant != nil {
		item.VariantID = variant.ID()
	}
	return item, nil
}

// ComputeTotal sums unitPrice*quantity over the given lines, adds the flat
// delivery surcharge, and rounds ONCE at the end. Inputs are consumed unrounded;
// rounding per item and re-summing would compound rounding error across lines.
func (pc *PricingCalculator) ComputeTotal(lines []TotalLine, surcharge *Money) (*Money, error) {
	total := ZeroMoney()
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if line.UnitPrice == nil {
			return nil, ErrMissingUnitPrice
		}
		total = total.Add(line.UnitPrice.MultiplyInt(line.Quantity))
	}

	if surcharge != nil {
		total = total.Add(surcharge)
	}

	return total.RoundMinorUnit(), nil
}
