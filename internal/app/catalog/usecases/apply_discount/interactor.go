package apply_discount

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request contains the data to apply a product-level discount.
// Nil window bounds mean the discount is unbounded on that side.
type Request struct {
	ProductID string
	Percent   domain.Percent
	StartDate *time.Time
	EndDate   *time.Time
}

// Interactor handles the apply discount use case.
type Interactor struct {
	repo       contracts.ProductRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new apply discount interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute applies a discount to a product. An existing discount must be
// removed first; replacing one implicitly would hide pricing mistakes.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	discount, err := domain.NewDiscount(req.Percent, req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	now := i.clock.Now()
	if err := product.ApplyDiscount(discount, now); err != nil {
		return err
	}

	plan := committer.NewPlan()

	updateMut, err := i.repo.UpdateMut(product)
	if err != nil {
		return err
	}
	plan.Add(updateMut)

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
