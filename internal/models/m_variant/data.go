package m_variant

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the product_variants table.
// The table is interleaved in products; a variant row cannot outlive its parent.
type Data struct {
	ProductID                  string              `spanner:"product_id"`
	VariantID                  string              `spanner:"variant_id"`
	Name                       string              `spanner:"name"`
	SKU                        string              `spanner:"sku"`
	PriceAdjustmentNumerator   int64               `spanner:"price_adjustment_numerator"`
	PriceAdjustmentDenominator int64               `spanner:"price_adjustment_denominator"`
	DiscountPercent            spanner.NullNumeric `spanner:"discount_percent"`
	DiscountStartDate          spanner.NullTime    `spanner:"discount_start_date"`
	DiscountEndDate            spanner.NullTime    `spanner:"discount_end_date"`
	Stock                      int64               `spanner:"stock"`
	CreatedAt                  time.Time           `spanner:"created_at"`
	UpdatedAt                  time.Time           `spanner:"updated_at"`
}
