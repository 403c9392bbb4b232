package m_category

import (
	"math/big"
	"time"
)

// Data represents the database model for the categories table.
// DiscountPercent is the storewide category promotion; zero means none.
type Data struct {
	CategoryID      string    `spanner:"category_id"`
	Name            string    `spanner:"name"`
	DiscountPercent big.Rat   `spanner:"discount_percent"`
	CreatedAt       time.Time `spanner:"created_at"`
	UpdatedAt       time.Time `spanner:"updated_at"`
}
