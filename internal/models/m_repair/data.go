package m_repair

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the repair_bookings table.
type Data struct {
	BookingID      string             `spanner:"booking_id"`
	CustomerName   string             `spanner:"customer_name"`
	CustomerEmail  string             `spanner:"customer_email"`
	CustomerPhone  spanner.NullString `spanner:"customer_phone"`
	DeviceModelID  string             `spanner:"device_model_id"`
	ProblemNote    spanner.NullString `spanner:"problem_note"`
	DeliveryMethod string             `spanner:"delivery_method"`
	ScheduledAt    time.Time          `spanner:"scheduled_at"`
	Status         string             `spanner:"status"`
	SurchargeNum   int64              `spanner:"surcharge_numerator"`
	SurchargeDenom int64              `spanner:"surcharge_denominator"`
	TotalNum       int64              `spanner:"total_numerator"`
	TotalDenom     int64              `spanner:"total_denominator"`
	CreatedAt      time.Time          `spanner:"created_at"`
	UpdatedAt      time.Time          `spanner:"updated_at"`
}

// ItemData represents the database model for the repair_items table.
// Quoted prices are captured at booking time.
type ItemData struct {
	BookingID          string             `spanner:"booking_id"`
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
