package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// VariantRepository defines the interface for variant persistence.
// Variants are interleaved in their parent product row.
type VariantRepository interface {
	// InsertMut creates a mutation for inserting a new variant.
	InsertMut(variant *domain.Variant) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a variant.
	UpdateMut(variant *domain.Variant) (*spanner.Mutation, error)

	// GetByID retrieves a single variant of a product.
	GetByID(ctx context.Context, productID, variantID string) (*domain.Variant, error)

	// ListByProduct retrieves all variants of a product.
	ListByProduct(ctx context.Context, productID string) ([]*domain.Variant, error)
}
