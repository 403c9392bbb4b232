package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// ProductRepository defines the interface for product persistence.
// Repositories return mutations, they don't apply them; usecases collect the
// mutations into a commit plan and apply it atomically.
type ProductRepository interface {
	// InsertMut creates a mutation for inserting a new product.
	// Returns an error if money values exceed int64 storage bounds.
	InsertMut(product *domain.Product) (*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating a product (only dirty fields).
	UpdateMut(product *domain.Product) (*spanner.Mutation, error)

	// GetByID retrieves a product by ID, reconstructing the domain aggregate.
	GetByID(ctx context.Context, productID string) (*domain.Product, error)

	// Exists checks if a product exists.
	Exists(ctx context.Context, productID string) (bool, error)
}
