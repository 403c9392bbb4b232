package m_order

// Field name constants for the orders table.
const (
	TableName = "orders"

	OrderID        = "order_id"
	CustomerID     = "customer_id"
	Status         = "status"
	DeliveryMethod = "delivery_method"
	SurchargeNum   = "surcharge_numerator"
	SurchargeDenom = "surcharge_denominator"
	TotalNum       = "total_numerator"
	TotalDenom     = "total_denominator"
	PaymentRef     = "payment_ref"
	Version        = "version"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// Field name constants for the order_items table (interleaved in orders).
const (
	ItemsTableName = "order_items"

	ItemOrderID            = "order_id"
	ItemLineNumber         = "line_number"
	ItemProductID          = "product_id"
	ItemVariantID          = "variant_id"
	ItemName               = "name"
	ItemQuantity           = "quantity"
	ItemUnitPriceNum       = "unit_price_numerator"
	ItemUnitPriceDenom     = "unit_price_denominator"
	ItemOriginalPriceNum   = "original_price_numerator"
	ItemOriginalPriceDenom = "original_price_denominator"
	ItemDiscountPercent    = "discount_percent"
)

// Order status constants
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)
