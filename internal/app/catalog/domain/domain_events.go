package domain

import "time"

// DomainEvent is the base interface for all domain events. Events are written to
// the outbox in the same commit as the aggregate change; the hosted backend's
// change feed delivers them to storefront clients.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ProductCreatedEvent is emitted when a product is created.
type ProductCreatedEvent struct {
	ProductID  string
	Name       string
	CategoryID string
	BasePrice  string
	Status     string
	CreatedAt  time.Time
}

func (e *ProductCreatedEvent) EventType() string   { return "product.created" }
func (e *ProductCreatedEvent) AggregateID() string { return e.ProductID }

// ProductUpdatedEvent is emitted when product details are updated.
type ProductUpdatedEvent struct {
	ProductID  string
	Name       string
	CategoryID string
	UpdatedAt  time.Time
}

func (e *ProductUpdatedEvent) EventType() string   { return "product.updated" }
func (e *ProductUpdatedEvent) AggregateID() string { return e.ProductID }

// ProductActivatedEvent is emitted when a product goes on sale.
type ProductActivatedEvent struct {
	ProductID string
	Timestamp time.Time
}

func (e *ProductActivatedEvent) EventType() string   { return "product.activated" }
func (e *ProductActivatedEvent) AggregateID() string { return e.ProductID }

// ProductArchivedEvent is emitted when a product is archived.
type ProductArchivedEvent struct {
	ProductID  string
	ArchivedAt time.Time
}

func (e *ProductArchivedEvent) EventType() string   { return "product.archived" }
func (e *ProductArchivedEvent) AggregateID() string { return e.ProductID }

// DiscountAppliedEvent is emitted when a discount is applied to a product.
// Window bounds are nil when the discount is unbounded on that side.
type DiscountAppliedEvent struct {
	ProductID       string
	DiscountPercent string
	StartDate       *time.Time
	EndDate         *time.Time
	AppliedAt       time.Time
}

func (e *DiscountAppliedEvent) EventType() string   { return "product.discount_applied" }
func (e *DiscountAppliedEvent) AggregateID() string { return e.ProductID }

// DiscountRemovedEvent is emitted when a discount is removed from a product.
type DiscountRemovedEvent struct {
	ProductID string
	RemovedAt time.Time
}

func (e *DiscountRemovedEvent) EventType() string   { return "product.discount_removed" }
func (e *DiscountRemovedEvent) AggregateID() string { return e.ProductID }

// VariantAddedEvent is emitted when a variant is added to a product.
type VariantAddedEvent struct {
	ProductID string
	VariantID string
	Name      string
	AddedAt   time.Time
}

func (e *VariantAddedEvent) EventType() string   { return "product.variant_added" }
func (e *VariantAddedEvent) AggregateID() string { return e.ProductID }

// StockChangedEvent is emitted when a variant's stock level changes.
type StockChangedEvent struct {
	ProductID string
	VariantID string
	Stock     int64
	ChangedAt time.Time
}

func (e *StockChangedEvent) EventType() string   { return "product.stock_changed" }
func (e *StockChangedEvent) AggregateID() string { return e.ProductID }
