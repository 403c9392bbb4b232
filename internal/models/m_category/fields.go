package m_category

// Field name constants for the categories table.
const (
	TableName = "categories"

	CategoryID      = "category_id"
	Name            = "name"
	DiscountPercent = "discount_percent"
	CreatedAt       = "created_at"
	UpdatedAt       = "updated_at"
)
