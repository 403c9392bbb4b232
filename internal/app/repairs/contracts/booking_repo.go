package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
)

// BookingRepository defines the interface for repair booking persistence.
type BookingRepository interface {
	// InsertMuts creates the mutations for inserting a booking and its items.
	InsertMuts(booking *domain.Booking) ([]*spanner.Mutation, error)

	// UpdateMut creates a mutation for updating the booking header.
	UpdateMut(booking *domain.Booking) *spanner.Mutation

	// GetByID retrieves a booking with its quoted items.
	GetByID(ctx context.Context, bookingID string) (*domain.Booking, error)
}

// OutboxRepository persists repair events to the shared outbox table.
type OutboxRepository interface {
	InsertEventMut(event domain.DomainEvent, payload string) *spanner.Mutation
}
