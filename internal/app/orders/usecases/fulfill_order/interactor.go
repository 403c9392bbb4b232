package fulfill_order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request identifies the order to fulfill.
type Request struct {
	OrderID string
}

// Interactor handles the fulfill order use case.
type Interactor struct {
	orders    contracts.OrderRepository
	outbox    contracts.OutboxRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new fulfill order interactor.
func NewInteractor(
	orders contracts.OrderRepository,
	outbox contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orders:    orders,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute marks a paid order as handed over or shipped.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	order, err := i.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return err
	}

	if err := order.Fulfill(i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.orders.UpdateMut(order))

	for _, event := range order.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertEventMut(event, string(payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
