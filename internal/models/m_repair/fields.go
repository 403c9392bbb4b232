package m_repair

// Field name constants for the repair_bookings table.
const (
	TableName = "repair_bookings"

	BookingID      = "booking_id"
	CustomerName   = "customer_name"
	CustomerEmail  = "customer_email"
	CustomerPhone  = "customer_phone"
	DeviceModelID  = "device_model_id"
	ProblemNote    = "problem_note"
	DeliveryMethod = "delivery_method"
	ScheduledAt    = "scheduled_at"
	Status         = "status"
	SurchargeNum   = "surcharge_numerator"
	SurchargeDenom = "surcharge_denominator"
	TotalNum       = "total_numerator"
	TotalDenom     = "total_denominator"
	CreatedAt      = "created_at"
	UpdatedAt      = "updated_at"
)

// Field name constants for the repair_items table (interleaved in repair_bookings).
const (
	ItemsTableName = "repair_items"

	ItemBookingID          = "booking_id"
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

// Booking status constants
const (
	StatusBooked     = "booked"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)
