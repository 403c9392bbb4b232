package m_order

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the orders table.
// Totals are stored as exact rationals; they were rounded once by the pricing
// core before persistence and are never re-derived from items on read.
type Data struct {
	OrderID        string             `spanner:"order_id"`
	CustomerID     string             `spanner:"customer_id"`
	Status         string             `spanner:"status"`
	DeliveryMethod string             `spanner:"delivery_method"`
	SurchargeNum   int64              `spanner:"surcharge_numerator"`
	SurchargeDenom int64              `spanner:"surcharge_denominator"`
	TotalNum       int64              `spanner:"total_numerator"`
	TotalDenom     int64              `spanner:"total_denominator"`
	PaymentRef     spanner.NullString `spanner:"payment_ref"`
	Version        int64              `spanner:"version"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}

// ItemData represents the database model for the order_items table.
// Prices are captured at order time; later catalog edits never reprice an order.
type ItemData struct {
	OrderID            string             `spanner:"order_id"`
	LineNumber         int64              `spanner:"line_number"`
	ProductID          string             `spanner:"product_id"`
	VariantID          spanner.NullString `spanner:"variant_id"`
	Name               string             `spanner:"name"`
	Quantity           int64              `spanner:"quantity"`
	UnitPriceNum       int64              `spanner:"unit_price_numerator"`
	UnitPriceDenom     int64              `spanner:"unit_price_denominator"`
	OriginalPriceNum   int64              `spanner:"original_price_numerator"`
	OriginalPriceDenom int64              `spanner:"original_price_denominator"`
	DiscountPercent    big.Rat            `spanner:"discount_percent"`
}
