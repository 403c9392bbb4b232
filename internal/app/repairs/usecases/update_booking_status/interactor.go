package update_booking_status

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request identifies the booking and the status to move it to.
type Request struct {
	BookingID string
	Status    domain.BookingStatus
}

// Interactor handles booking status transitions from the workshop desk.
type Interactor struct {
	bookings  contracts.BookingRepository
	outbox    contracts.OutboxRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new update booking status interactor.
func NewInteractor(
	bookings contracts.BookingRepository,
	outbox contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		bookings:  bookings,
		outbox:    outbox,
		committer: committer,
		clock:     clock,
	}
}

// Execute moves a booking through its lifecycle.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	booking, err := i.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return err
	}

	now := i.clock.Now()
	switch req.Status {
	case domain.StatusInProgress:
		err = booking.Start(now)
	case domain.StatusCompleted:
		err = booking.Complete(now)
	case domain.StatusCancelled:
		err = booking.Cancel(now)
	default:
		err = domain.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.bookings.UpdateMut(booking))

	for _, event := range booking.DomainEvents() {
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
