package update_stock

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request sets a variant's absolute stock level.
type Request struct {
	ProductID string
	VariantID string
	Stock     int64
}

// Interactor handles the update stock use case.
type Interactor struct {
	variants  contracts.VariantRepository
	outbox    contracts.OutboxRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update stock interactor.
func NewInteractor(
	variants contracts.VariantRepository,
	outbox contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		variants:  variants,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute sets the stock level of a variant and notifies storefront clients.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	variant, err := i.variants.GetByID(ctx, req.ProductID, req.VariantID)
	if err != nil {
		return err
	}

	if err := variant.SetStock(req.Stock); err != nil {
		return err
	}

	plan := committer.NewPlan()

	updateMut, err := i.variants.UpdateMut(variant)
	if err != nil {
		return err
	}
	plan.Add(updateMut)

	event := &domain.StockChangedEvent{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Stock:     req.Stock,
		ChangedAt: i.clock.Now(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}
	outboxEvent := i.outbox.EnrichEvent(event, string(payload))
	plan.Add(i.outbox.InsertMut(outboxEvent))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
