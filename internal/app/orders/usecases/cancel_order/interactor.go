package cancel_order

import (
	"context"
	"encoding/json"
	"fmt"

	catalogcontracts "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/payments"
)

// Request identifies the order to cancel.
type Request struct {
	OrderID string
}

// Interactor handles the cancel order use case.
type Interactor struct {
	orders    contracts.OrderRepository
	outbox    contracts.OutboxRepository
	variants  catalogcontracts.VariantRepository
	provider  payments.Provider
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new cancel order interactor.
func NewInteractor(
	orders contracts.OrderRepository,
	outbox contracts.OutboxRepository,
	variants catalogcontracts.VariantRepository,
	provider payments.Provider,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		orders:    orders,
		outbox:    outbox,
		variants:  variants,
		provider:  provider,
		committer: committer,
		clock:     clock,
	}
}

// Execute cancels an order, refunds the payment if one was captured and
// returns the reserved stock.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	order, err := i.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return err
	}

	wasPaid := order.Status() == domain.StatusPaid
	if err := order.Cancel(i.clock.Now()); err != nil {
		return err
	}

	if wasPaid {
		if err := i.provider.Refund(ctx, order.PaymentRef()); err != nil {
			return err
		}
	}

	plan := committer.NewPlan()
	plan.Add(i.orders.UpdateMut(order))

	// Return reserved stock for variant lines.
	for _, item := range order.Items() {
		if item.VariantID == "" {
			continue
		}
		variant, err := i.variants.GetByID(ctx, item.ProductID, item.VariantID)
		if err != nil {
			// A variant removed after the order was placed cannot be
			// restocked; the cancellation still proceeds.
			continue
		}
		if err := variant.AdjustStock(item.Quantity); err != nil {
			return err
		}
		stockMut, err := i.variants.UpdateMut(variant)
		if err != nil {
			return err
		}
		plan.Add(stockMut)
	}

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
