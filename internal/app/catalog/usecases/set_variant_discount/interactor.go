package set_variant_discount

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request sets or clears the variant-level discount. A nil Percent clears it,
// restoring the fallback to the product-level discount. Note that a zero
// Percent is different: it pins the variant at full price even while the
// product is discounted.
type Request struct {
	ProductID string
	VariantID string
	Percent   *domain.Percent
	StartDate *time.Time
	EndDate   *time.Time
}

// Interactor handles the set variant discount use case.
type Interactor struct {
	variants  contracts.VariantRepository
	committer committer.Applier
}

// NewInteractor creates a new set variant discount interactor.
func NewInteractor(variants contracts.VariantRepository, committer committer.Applier) *Interactor {
	return &Interactor{
		variants:  variants,
		committer: committer,
	}
}

// Execute replaces the variant's discount with the requested one.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	variant, err := i.variants.GetByID(ctx, req.ProductID, req.VariantID)
	if err != nil {
		return err
	}

	if req.Percent == nil {
		variant.SetDiscount(nil)
	} else {
		discount, err := domain.NewDiscount(*req.Percent, req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		variant.SetDiscount(discount)
	}

	plan := committer.NewPlan()

	updateMut, err := i.variants.UpdateMut(variant)
	if err != nil {
		return err
	}
	plan.Add(updateMut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
