package m_variant

// Field name constants for the product_variants table.
const (
	TableName = "product_variants"

	VariantID                  = "variant_id"
	ProductID                  = "product_id"
	Name                       = "name"
	SKU                        = "sku"
	PriceAdjustmentNumerator   = "price_adjustment_numerator"
	PriceAdjustmentDenominator = "price_adjustment_denominator"
	DiscountPercent            = "discount_percent"
	DiscountStartDate          = "discount_start_date"
	DiscountEndDate            = "discount_end_date"
	Stock                      = "stock"
	CreatedAt                  = "created_at"
	UpdatedAt                  = "updated_at"
)
