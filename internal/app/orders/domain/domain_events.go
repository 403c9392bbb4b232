package domain

import "time"

// DomainEvent is the base interface for order events. Events share the outbox
// table with catalog events; the change feed fans them out to clients.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OrderPlacedEvent is emitted when an order is created.
type OrderPlacedEvent struct {
	OrderID    string
	CustomerID string
	Total      string
	PlacedAt   time.Time
}

func (e *OrderPlacedEvent) EventType() string   { return "order.placed" }
func (e *OrderPlacedEvent) AggregateID() string { return e.OrderID }

// OrderPaidEvent is emitted when payment is captured.
type OrderPaidEvent struct {
	OrderID    string
	PaymentRef string
	PaidAt     time.Time
}

func (e *OrderPaidEvent) EventType() string   { return "order.paid" }
func (e *OrderPaidEvent) AggregateID() string { return e.OrderID }

// OrderFulfilledEvent is emitted when an order is handed over or shipped.
type OrderFulfilledEvent struct {
	OrderID     string
	FulfilledAt time.Time
}

func (e *OrderFulfilledEvent) EventType() string   { return "order.fulfilled" }
func (e *OrderFulfilledEvent) AggregateID() string { return e.OrderID }

// OrderCancelledEvent is emitted when an order is voided.
type OrderCancelledEvent struct {
	OrderID     string
	WasPaid     bool
	CancelledAt time.Time
}

func (e *OrderCancelledEvent) EventType() string   { return "order.cancelled" }
func (e *OrderCancelledEvent) AggregateID() string { return e.OrderID }
