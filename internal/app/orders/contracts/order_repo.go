package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
)

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	// InsertMuts creates the mutations for inserting an order and its items.
	InsertMuts(order *domain.Order) ([]*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating the order header (status,
	// payment reference). Items are immutable once written.
	UpdateMut(order *domain.Order) *spanner.Mutation

	// GetByID retrieves an order with its items.
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListByCustomer retrieves a customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID string, limit int64) ([]*domain.Order, error)
}

// OutboxRepository persists order events to the shared outbox table.
type OutboxRepository interface {
	InsertEventMut(event domain.DomainEvent, payload string) *spanner.Mutation
}
