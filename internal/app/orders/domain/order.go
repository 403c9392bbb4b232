package domain

import (
	"time"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// DeliveryMethod determines how the customer receives the order.
type DeliveryMethod string

const (
	// DeliveryPickup is free collection at the shop counter.
	DeliveryPickup DeliveryMethod = "pickup"
	// DeliveryCourier adds the flat courier surcharge to the total.
	DeliveryCourier DeliveryMethod = "courier"
)

// ParseDeliveryMethod converts a string to a DeliveryMethod.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(s) {
	case DeliveryPickup, DeliveryCourier:
		return DeliveryMethod(s), nil
	default:
		return "", ErrInvalidDeliveryMethod
	}
}

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPaid      OrderStatus = "paid"
	StatusFulfilled OrderStatus = "fulfilled"
	StatusCancelled OrderStatus = "cancelled"
)

// OrderItem is a priced line captured at order time. Unit prices are final
// per-unit amounts; later catalog edits never reprice a placed order.
type OrderItem struct {
	ProductID         string
	VariantID         string
	Name              string
	Quantity          int64
	UnitPrice         *catalog.Money
	OriginalUnitPrice *catalog.Money
	DiscountPercent   catalog.Percent
}

// Order is the purchase aggregate. The total was computed by the pricing
// calculator from the item snapshot plus the delivery surcharge and is stored,
// not re-derived.
type Order struct {
	id             string
	customerID     string
	status         OrderStatus
	deliveryMethod DeliveryMethod
	items          []OrderItem
	surcharge      *catalog.Money
	total          *catalog.Money
	paymentRef     string
	version        int64
	createdAt      time.Time
	updatedAt      time.Time

	events []DomainEvent
}

// NewOrder creates a pending order from priced items.
func NewOrder(id, customerID string, method DeliveryMethod, items []OrderItem, surcharge, total *catalog.Money, now time.Time) (*Order, error) {
	if _, err := ParseDeliveryMethod(string(method)); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, catalog.ErrInvalidQuantity
		}
		if item.UnitPrice == nil {
			return nil, catalog.ErrMissingUnitPrice
		}
	}
	if total == nil || total.IsNegative() {
		return nil, ErrInvalidTotal
	}

	order := &Order{
		id:             id,
		customerID:     customerID,
		status:         StatusPending,
		deliveryMethod: method,
		items:          items,
		surcharge:      surcharge,
		total:          total,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
		events:         make([]DomainEvent, 0),
	}

	order.recordEvent(&OrderPlacedEvent{
		OrderID:    id,
		CustomerID: customerID,
		Total:      total.String(),
		PlacedAt:   now,
	})

	return order, nil
}

// ReconstructOrder reconstitutes an Order from database rows.
func ReconstructOrder(
	id, customerID string,
	status OrderStatus,
	method DeliveryMethod,
	items []OrderItem,
	surcharge, total *catalog.Money,
	paymentRef string,
	version int64,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:             id,
		customerID:     customerID,
		status:         status,
		deliveryMethod: method,
		items:          items,
		surcharge:      surcharge,
		total:          total,
		paymentRef:     paymentRef,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		events:         make([]DomainEvent, 0),
	}
}

func (o *Order) ID() string                     { return o.id }
func (o *Order) CustomerID() string             { return o.customerID }
func (o *Order) Status() OrderStatus            { return o.status }
func (o *Order) DeliveryMethod() DeliveryMethod { return o.deliveryMethod }
func (o *Order) Items() []OrderItem             { return o.items }
func (o *Order) Surcharge() *catalog.Money      { return o.surcharge.Copy() }
func (o *Order) Total() *catalog.Money          { return o.total.Copy() }
func (o *Order) PaymentRef() string             { return o.paymentRef }
func (o *Order) Version() int64                 { return o.version }
func (o *Order) CreatedAt() time.Time           { return o.createdAt }
func (o *Order) UpdatedAt() time.Time           { return o.updatedAt }
func (o *Order) DomainEvents() []DomainEvent    { return o.events }

// MarkPaid records the successful payment capture.
func (o *Order) MarkPaid(paymentRef string, now time.Time) error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}

	o.status = StatusPaid
	o.paymentRef = paymentRef
	o.updatedAt = now

	o.recordEvent(&OrderPaidEvent{
		OrderID:    o.id,
		PaymentRef: paymentRef,
		PaidAt:     now,
	})
	return nil
}

// Fulfill marks a paid order as handed over or shipped.
func (o *Order) Fulfill(now time.Time) error {
	if o.status != StatusPaid {
		return ErrInvalidTransition
	}

	o.status = StatusFulfilled
	o.updatedAt = now

	o.recordEvent(&OrderFulfilledEvent{
		OrderID:     o.id,
		FulfilledAt: now,
	})
	return nil
}

// Cancel voids a pending or paid order. The caller refunds the payment when
// the order was already paid.
func (o *Order) Cancel(now time.Time) error {
	if o.status != StatusPending && o.status != StatusPaid {
		return ErrInvalidTransition
	}

	wasPaid := o.status == StatusPaid
	o.status = StatusCancelled
	o.updatedAt = now

	o.recordEvent(&OrderCancelledEvent{
		OrderID:     o.id,
		WasPaid:     wasPaid,
		CancelledAt: now,
	})
	return nil
}

func (o *Order) recordEvent(event DomainEvent) {
	o.events = append(o.events, event)
}

// ClearEvents clears all recorded domain events.
func (o *Order) ClearEvents() {
	o.events = make([]DomainEvent, 0)
}
