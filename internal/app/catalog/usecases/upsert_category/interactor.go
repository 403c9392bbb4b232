package upsert_category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request creates a category or updates an existing one's name and discount.
// An empty CategoryID creates a new category.
type Request struct {
	CategoryID string
	Name       string
	Discount   domain.Percent
}

// Interactor handles the upsert category use case.
type Interactor struct {
	categories contracts.CategoryRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new upsert category interactor.
func NewInteractor(categories contracts.CategoryRepository, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{
		categories: categories,
		committer:  committer,
		clock:      clock,
	}
}

// Execute creates or updates a category. Changing the category discount takes
// effect on the next price resolution; nothing stored per product changes.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if req.Name == "" {
		return "", domain.ErrEmptyName
	}

	plan := committer.NewPlan()

	categoryID := req.CategoryID
	if categoryID == "" {
		categoryID = uuid.New().String()
		category, err := domain.NewCategory(categoryID, req.Name, req.Discount, i.clock.Now())
		if err != nil {
			return "", err
		}
		plan.Add(i.categories.InsertMut(category))
	} else {
		category, err := i.categories.GetByID(ctx, categoryID)
		if err != nil {
			return "", err
		}
		if err := category.Rename(req.Name); err != nil {
			return "", err
		}
		category.SetDiscount(req.Discount)
		plan.Add(i.categories.UpdateMut(category))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return categoryID, nil
}
