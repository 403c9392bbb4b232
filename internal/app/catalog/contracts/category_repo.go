package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// InsertMut creates a mutation for inserting a new category.
	InsertMut(category *domain.Category) *spanner.Mutation

	// UpdateMut creates a mutation for updating a category's discount.
	UpdateMut(category *domain.Category) *spanner.Mutation

	// GetByID retrieves a category by ID.
	GetByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// DiscountFor returns the category-level discount percentage.
	// A missing category yields a zero percent, not an error, so pricing
	// never fails on a dangling category reference.
	DiscountFor(ctx context.Context, categoryID string) (domain.Percent, error)
}
