package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

func money(t *testing.T, num, denom int64) *catalog.Money {
	t.Helper()
	m, err := catalog.NewMoney(num, denom)
	require.NoError(t, err)
	return m
}

func validItems(t *testing.T) []BookingItem {
	t.Helper()
	return []BookingItem{{
		ProductID:         "prod-1",
		Name:              "Screen replacement",
		Quantity:          1,
		UnitPrice:         money(t, 89, 1),
		OriginalUnitPrice: money(t, 89, 1),
		DiscountPercent:   catalog.ZeroPercent(),
	}}
}

func newTestBooking(t *testing.T) (*Booking, time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	booking, err := NewBooking(
		"book-1", "Ada Lovelace", "ada@example.com", "+32470000000",
		"model-1", "cracked screen",
		HandoverDropoff, now.Add(48*time.Hour),
		validItems(t), catalog.ZeroMoney(), money(t, 89, 1), now,
	)
	require.NoError(t, err)
	return booking, now
}

func TestNewBooking_RecordsBookedEvent(t *testing.T) {
	booking, _ := newTestBooking(t)

	assert.Equal(t, StatusBooked, booking.Status())
	require.Len(t, booking.DomainEvents(), 1)

	event, ok := booking.DomainEvents()[0].(*RepairBookedEvent)
	require.True(t, ok)
	assert.Equal(t, "book-1", event.BookingID)
	assert.Equal(t, "model-1", event.DeviceModelID)
	assert.Equal(t, "89.00", event.Total)
}

func TestNewBooking_Validation(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(48 * time.Hour)

	tests := []struct {
		name    string
		mutate  func(customerName, email, modelID *string, handover *HandoverMethod, scheduledAt *time.Time)
		wantErr error
	}{
		{
			name:    "blank customer name",
			mutate:  func(n, e, m *string, h *HandoverMethod, s *time.Time) { *n = "   " },
			wantErr: ErrEmptyCustomerName,
		},
		{
			name:    "malformed email",
			mutate:  func(n, e, m *string, h *HandoverMethod, s *time.Time) { *e = "not-an-email" },
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "missing device model",
			mutate:  func(n, e, m *string, h *HandoverMethod, s *time.Time) { *m = "" },
			wantErr: ErrMissingDeviceModel,
		},
		{
			name:    "unknown handover",
			mutate:  func(n, e, m *string, h *HandoverMethod, s *time.Time) { *h = "teleport" },
			wantErr: ErrInvalidHandover,
		},
		{
			name:    "scheduled in the past",
			mutate:  func(n, e, m *string, h *HandoverMethod, s *time.Time) { *s = now.Add(-time.Hour) },
			wantErr: ErrPastSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customerName := "Ada Lovelace"
			email := "ada@example.com"
			modelID := "model-1"
			handover := HandoverDropoff
			scheduledAt := scheduled
			tt.mutate(&customerName, &email, &modelID, &handover, &scheduledAt)

			_, err := NewBooking(
				"book-1", customerName, email, "",
				modelID, "",
				handover, scheduledAt,
				validItems(t), catalog.ZeroMoney(), money(t, 89, 1), now,
			)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestNewBooking_RejectsBadItems(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	scheduled := now.Add(48 * time.Hour)

	items := validItems(t)
	items[0].Quantity = 0
	_, err := NewBooking("book-1", "Ada", "ada@example.com", "", "model-1", "",
		HandoverDropoff, scheduled, items, catalog.ZeroMoney(), money(t, 89, 1), now)
	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)

	items = validItems(t)
	items[0].UnitPrice = nil
	_, err = NewBooking("book-1", "Ada", "ada@example.com", "", "model-1", "",
		HandoverDropoff, scheduled, items, catalog.ZeroMoney(), money(t, 89, 1), now)
	assert.ErrorIs(t, err, catalog.ErrMissingUnitPrice)

	_, err = NewBooking("book-1", "Ada", "ada@example.com", "", "model-1", "",
		HandoverDropoff, scheduled, validItems(t), catalog.ZeroMoney(), money(t, -1, 1), now)
	assert.ErrorIs(t, err, ErrInvalidTotal)
}

func TestBooking_Lifecycle(t *testing.T) {
	booking, now := newTestBooking(t)
	booking.ClearEvents()

	require.NoError(t, booking.Start(now.Add(48*time.Hour)))
	assert.Equal(t, StatusInProgress, booking.Status())

	require.NoError(t, booking.Complete(now.Add(50*time.Hour)))
	assert.Equal(t, StatusCompleted, booking.Status())

	require.Len(t, booking.DomainEvents(), 2)
	event, ok := booking.DomainEvents()[1].(*RepairStatusChangedEvent)
	require.True(t, ok)
	assert.Equal(t, "completed", event.Status)
}

func TestBooking_RejectsBadTransitions(t *testing.T) {
	booking, now := newTestBooking(t)

	// Cannot complete before work starts.
	assert.ErrorIs(t, booking.Complete(now), ErrInvalidTransition)

	require.NoError(t, booking.Start(now))
	require.NoError(t, booking.Complete(now))

	// Completed bookings are final.
	assert.ErrorIs(t, booking.Cancel(now), ErrInvalidTransition)
	assert.ErrorIs(t, booking.Start(now), ErrInvalidTransition)
}

func TestBooking_CancelFromInProgress(t *testing.T) {
	booking, now := newTestBooking(t)
	require.NoError(t, booking.Start(now))
	require.NoError(t, booking.Cancel(now))
	assert.Equal(t, StatusCancelled, booking.Status())
}
