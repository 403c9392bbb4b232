package create_order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	catalogcontracts "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/payments"
)

// LineRequest is one requested order line. VariantID is empty when the
// product is ordered without a variant selection.
type LineRequest struct {
	ProductID string
	VariantID string
	Quantity  int64
}

// Request contains the data needed to place an order.
type Request struct {
	CustomerID     string
	DeliveryMethod domain.DeliveryMethod
	Lines          []LineRequest
	PaymentMethod  string
}

// Result reports the placed order.
type Result struct {
	OrderID string
	Total   *catalog.Money
}

// Interactor handles the create order use case. Checkout prices every line
// at the order instant, charges the payment provider for the computed total
// and commits the order, the stock decrements and the outbox events in one
// transaction.
type Interactor struct {
	orders           contracts.OrderRepository
	outbox           contracts.OutboxRepository
	products         catalogcontracts.ProductRepository
	variants         catalogcontracts.VariantRepository
	categories       catalogcontracts.CategoryRepository
	provider         payments.Provider
	committer        committer.Applier
	clock            clock.Clock
	calc             *catalog.PricingCalculator
	courierSurcharge *catalog.Money
	currency         string
}

// NewInteractor creates a new create order interactor.
func NewInteractor(
	orders contracts.OrderRepository,
	outbox contracts.OutboxRepository,
	products catalogcontracts.ProductRepository,
	variants catalogcontracts.VariantRepository,
	categories catalogcontracts.CategoryRepository,
	provider payments.Provider,
	committer committer.Applier,
	clock clock.Clock,
	courierSurcharge *catalog.Money,
	currency string,
) *Interactor {
	return &Interactor{
		orders:           orders,
		outbox:           outbox,
		products:         products,
		variants:         variants,
		categories:       categories,
		provider:         provider,
		committer:        committer,
		clock:            clock,
		calc:             catalog.NewPricingCalculator(),
		courierSurcharge: courierSurcharge,
		currency:         currency,
	}
}

// Execute places an order.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.CustomerID == "" {
		return nil, domain.ErrMissingCustomer
	}
	if _, err := domain.ParseDeliveryMethod(string(req.DeliveryMethod)); err != nil {
		return nil, err
	}
	if len(req.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	now := i.clock.Now()
	plan := committer.NewPlan()

	items := make([]domain.OrderItem, 0, len(req.Lines))
	totalLines := make([]catalog.TotalLine, 0, len(req.Lines))

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, catalog.ErrInvalidQuantity
		}

		product, err := i.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsActive() {
			return nil, fmt.Errorf("product %s: %w", line.ProductID, domain.ErrProductNotOnSale)
		}

		category, err := i.categories.DiscountFor(ctx, product.CategoryID())
		if err != nil {
			return nil, err
		}

		var variant *catalog.Variant
		name := product.Name()
		if line.VariantID != "" {
			variant, err = i.variants.GetByID(ctx, line.ProductID, line.VariantID)
			if err != nil {
				return nil, err
			}
			if !variant.InStock(line.Quantity) {
				return nil, fmt.Errorf("variant %s: %w", line.VariantID, domain.ErrOutOfStock)
			}
			name = fmt.Sprintf("%s (%s)", product.Name(), variant.Name())

			// Reserve stock in the same commit as the order rows.
			if err := variant.AdjustStock(-line.Quantity); err != nil {
				return nil, err
			}
			stockMut, err := i.variants.UpdateMut(variant)
			if err != nil {
				return nil, err
			}
			plan.Add(stockMut)
		}

		lineItem, err := i.calc.BuildLineItem(product, variant, category, now)
		if err != nil {
			return nil, err
		}

		discountPercent := lineItem.Discount

		items = append(items, domain.OrderItem{
			ProductID:         line.ProductID,
			VariantID:         line.VariantID,
			Name:              name,
			Quantity:          line.Quantity,
			UnitPrice:         lineItem.UnitPrice,
			OriginalUnitPrice: lineItem.OriginalUnitPrice,
			DiscountPercent:   discountPercent,
		})
		totalLines = append(totalLines, catalog.TotalLine{
			UnitPrice: lineItem.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	surcharge := catalog.ZeroMoney()
	if req.DeliveryMethod == domain.DeliveryCourier {
		surcharge = i.courierSurcharge.Copy()
	}

	total, err := i.calc.ComputeTotal(totalLines, surcharge)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	order, err := domain.NewOrder(orderID, req.CustomerID, req.DeliveryMethod, items, surcharge, total, now)
	if err != nil {
		return nil, err
	}

	amountMinor, err := total.MinorUnits()
	if err != nil {
		return nil, err
	}

	paymentRef, err := i.provider.Capture(ctx, payments.Charge{
		AmountMinor:   amountMinor,
		Currency:      i.currency,
		PaymentMethod: req.PaymentMethod,
		CustomerRef:   req.CustomerID,
		Description:   fmt.Sprintf("order %s", orderID),
	})
	if err != nil {
		return nil, err
	}

	if err := order.MarkPaid(paymentRef, now); err != nil {
		return nil, err
	}

	orderMuts, err := i.orders.InsertMuts(order)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(orderMuts)

	for _, event := range order.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertEventMut(event, string(payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		// The charge went through but the order did not persist; void it so
		// the customer is not billed for nothing.
		if refundErr := i.provider.Refund(ctx, paymentRef); refundErr != nil {
			return nil, fmt.Errorf("commit failed and refund failed (%v): %w", refundErr, err)
		}
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{OrderID: orderID, Total: total}, nil
}
