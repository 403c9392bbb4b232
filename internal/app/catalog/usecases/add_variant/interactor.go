package add_variant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request contains the data needed to add a variant to a product.
// A nil DiscountPercent leaves the variant without its own discount; pricing
// then falls back to the product-level discount.
type Request struct {
	ProductID       string
	Name            string
	SKU             string
	PriceAdjustment *domain.Money
	Stock           int64
	DiscountPercent *domain.Percent
	DiscountStart   *time.Time
	DiscountEnd     *time.Time
}

// Interactor handles the add variant use case.
type Interactor struct {
	products  contracts.ProductRepository
	variants  contracts.VariantRepository
	outbox    contracts.OutboxRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new add variant interactor.
func NewInteractor(
	products contracts.ProductRepository,
	variants contracts.VariantRepository,
	outbox contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		products:  products,
		variants:  variants,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute adds a variant to an existing, non-archived product.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	product, err := i.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return "", err
	}
	if product.IsArchived() {
		return "", domain.ErrCannotModifyArchived
	}

	variantID := uuid.New().String()
	now := i.clock.Now()

	variant, err := domain.NewVariant(
		variantID,
		req.ProductID,
		req.Name,
		req.SKU,
		req.PriceAdjustment,
		req.Stock,
		now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create variant: %w", err)
	}

	if req.DiscountPercent != nil {
		discount, err := domain.NewDiscount(*req.DiscountPercent, req.DiscountStart, req.DiscountEnd)
		if err != nil {
			return "", err
		}
		variant.SetDiscount(discount)
	}

	plan := committer.NewPlan()

	insertMut, err := i.variants.InsertMut(variant)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	event := &domain.VariantAddedEvent{
		ProductID: req.ProductID,
		VariantID: variantID,
		Name:      req.Name,
		AddedAt:   now,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outbox.EnrichEvent(event, string(payload))
	plan.Add(i.outbox.InsertMut(outboxEvent))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return variantID, nil
}
