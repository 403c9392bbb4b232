package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogcontracts "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	devicescontracts "github.com/ahmadnk31/5gfones-sub000/internal/app/devices/contracts"
	devices "github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// LineRequest is one requested repair service or part.
type LineRequest struct {
	ProductID string
	VariantID string
	Quantity  int64
}

// Request contains the data needed to book a repair.
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	DeviceModelID string
	ProblemNote   string
	Handover      domain.HandoverMethod
	ScheduledAt   time.Time
	Lines         []LineRequest
}

// Result reports the booked repair and its quoted total.
type Result struct {
	BookingID string
	Total     *catalog.Money
}

// Interactor handles the create booking use case. The quote prices every
// line at the booking instant and is fixed from then on; payment happens at
// the counter when the customer collects the device.
type Interactor struct {
	bookings         contracts.BookingRepository
	outbox           contracts.OutboxRepository
	products         catalogcontracts.ProductRepository
	variants         catalogcontracts.VariantRepository
	categories       catalogcontracts.CategoryRepository
	nodes            devicescontracts.NodeRepository
	committer        committer.Applier
	clock            clock.Clock
	calc             *catalog.PricingCalculator
	courierSurcharge *catalog.Money
}

// NewInteractor creates a new create booking interactor.
func NewInteractor(
	bookings contracts.BookingRepository,
	outbox contracts.OutboxRepository,
	products catalogcontracts.ProductRepository,
	variants catalogcontracts.VariantRepository,
	categories catalogcontracts.CategoryRepository,
	nodes devicescontracts.NodeRepository,
	committer committer.Applier,
	clock clock.Clock,
	courierSurcharge *catalog.Money,
) *Interactor {
	return &Interactor{
		bookings:         bookings,
		outbox:           outbox,
		products:         products,
		variants:         variants,
		categories:       categories,
		nodes:            nodes,
		committer:        committer,
		clock:            clock,
		calc:             catalog.NewPricingCalculator(),
		courierSurcharge: courierSurcharge,
	}
}

// Execute books a repair appointment.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if req.DeviceModelID == "" {
		return nil, domain.ErrMissingDeviceModel
	}
	if _, err := domain.ParseHandoverMethod(string(req.Handover)); err != nil {
		return nil, err
	}

	// The booking must reference a model that exists in the device tree.
	if _, err := i.nodes.GetByID(ctx, devices.LevelModel, req.DeviceModelID); err != nil {
		return nil, err
	}

	now := i.clock.Now()

	items := make([]domain.BookingItem, 0, len(req.Lines))
	totalLines := make([]catalog.TotalLine, 0, len(req.Lines))

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, catalog.ErrInvalidQuantity
		}

		product, err := i.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
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
			name = fmt.Sprintf("%s (%s)", product.Name(), variant.Name())
		}

		lineItem, err := i.calc.BuildLineItem(product, variant, category, now)
		if err != nil {
			return nil, err
		}

		discountPercent := lineItem.Discount

		items = append(items, domain.BookingItem{
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
	if req.Handover == domain.HandoverCourier {
		surcharge = i.courierSurcharge.Copy()
	}

	total, err := i.calc.ComputeTotal(totalLines, surcharge)
	if err != nil {
		return nil, err
	}

	bookingID := uuid.New().String()
	booking, err := domain.NewBooking(
		bookingID,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.DeviceModelID, req.ProblemNote,
		req.Handover, req.ScheduledAt,
		items, surcharge, total, now,
	)
	if err != nil {
		return nil, err
	}

	plan := committer.NewPlan()

	bookingMuts, err := i.bookings.InsertMuts(booking)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(bookingMuts)

	for _, event := range booking.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outbox.InsertEventMut(event, string(payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &Result{BookingID: bookingID, Total: total}, nil
}
