package contracts

import (
	"context"
	"time"
)

// ProductDTO is a data transfer object for product queries. Money fields are
// decimal strings already rounded to two places.
type ProductDTO struct {
	ProductID       string
	Name            string
	Description     string
	CategoryID      string
	ImageURL        string
	BasePrice       string
	EffectivePrice  string // current price with the winning discount applied
	DiscountPercent string // empty when no discount is in effect
	DiscountActive  bool
	Status          string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Variants        []*VariantDTO
}

// VariantDTO is a data transfer object for a product variant.
type VariantDTO struct {
	VariantID       string
	Name            string
	SKU             string
	PriceAdjustment string
	UnitPrice       string // effective per-unit price for this variant
	OriginalPrice   string // pre-discount per-unit price
	DiscountPercent string
	Stock           int64
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	CategoryID string
	Status     string
	PageSize   int
	PageToken  string
}

// ListResult contains paginated product list results.
type ListResult struct {
	Products      []*ProductDTO
	NextPageToken string
	TotalCount    int64
}

// ReadModel defines the interface for product queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// GetProductByID retrieves a product DTO with per-variant effective
	// prices computed at the given instant.
	GetProductByID(ctx context.Context, productID string, now time.Time) (*ProductDTO, error)

	// ListProducts retrieves a paginated list of products with filtering.
	// Effective prices are computed at the given instant.
	ListProducts(ctx context.Context, filter *ListFilter, now time.Time) (*ListResult, error)
}
