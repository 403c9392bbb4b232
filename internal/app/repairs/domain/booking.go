package domain

import (
	"strings"
	"time"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// HandoverMethod determines how the device reaches the workshop.
type HandoverMethod string

const (
	// HandoverDropoff means the customer brings the device to the shop.
	HandoverDropoff HandoverMethod = "dropoff"
	// HandoverCourier means a courier collects the device, adding the flat
	// courier surcharge to the quote.
	HandoverCourier HandoverMethod = "courier"
)

// ParseHandoverMethod converts a string to a HandoverMethod.
func ParseHandoverMethod(s string) (HandoverMethod, error) {
	switch HandoverMethod(s) {
	case HandoverDropoff, HandoverCourier:
		return HandoverMethod(s), nil
	default:
		return "", ErrInvalidHandover
	}
}

// BookingStatus represents the lifecycle state of a repair booking.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// BookingItem is one quoted repair service or part, priced at booking time.
type BookingItem struct {
	ProductID         string
	VariantID         string
	Name              string
	Quantity          int64
	UnitPrice         *catalog.Money
	OriginalUnitPrice *catalog.Money
	DiscountPercent   catalog.Percent
}

// Booking is the repair appointment aggregate. The quoted total was computed
// by the pricing calculator and is fixed at booking time; the customer pays
// that amount at the counter even if catalog prices change meanwhile.
type Booking struct {
	id            string
	customerName  string
	customerEmail string
	customerPhone string
	deviceModelID string
	problemNote   string
	handover      HandoverMethod
	scheduledAt   time.Time
	status        BookingStatus
	items         []BookingItem
	surcharge     *catalog.Money
	total         *catalog.Money
	createdAt     time.Time
	updatedAt     time.Time

	events []DomainEvent
}

// NewBooking creates a repair booking with validation.
func NewBooking(
	id, customerName, customerEmail, customerPhone string,
	deviceModelID, problemNote string,
	handover HandoverMethod,
	scheduledAt time.Time,
	items []BookingItem,
	surcharge, total *catalog.Money,
	now time.Time,
) (*Booking, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}
	if !strings.Contains(customerEmail, "@") {
		return nil, ErrInvalidEmail
	}
	if deviceModelID == "" {
		return nil, ErrMissingDeviceModel
	}
	if _, err := ParseHandoverMethod(string(handover)); err != nil {
		return nil, err
	}
	if !scheduledAt.After(now) {
		return nil, ErrPastSchedule
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

	booking := &Booking{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		deviceModelID: deviceModelID,
		problemNote:   problemNote,
		handover:      handover,
		scheduledAt:   scheduledAt,
		status:        StatusBooked,
		items:         items,
		surcharge:     surcharge,
		total:         total,
		createdAt:     now,
		updatedAt:     now,
		events:        make([]DomainEvent, 0),
	}

	booking.recordEvent(&RepairBookedEvent{
		BookingID:     id,
		DeviceModelID: deviceModelID,
		ScheduledAt:   scheduledAt,
		Total:         total.String(),
		BookedAt:      now,
	})

	return booking, nil
}

// ReconstructBooking reconstitutes a Booking from database rows.
func ReconstructBooking(
	id, customerName, customerEmail, customerPhone string,
	deviceModelID, problemNote string,
	handover HandoverMethod,
	scheduledAt time.Time,
	status BookingStatus,
	items []BookingItem,
	surcharge, total *catalog.Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		deviceModelID: deviceModelID,
		problemNote:   problemNote,
		handover:      handover,
		scheduledAt:   scheduledAt,
		status:        status,
		items:         items,
		surcharge:     surcharge,
		total:         total,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		events:        make([]DomainEvent, 0),
	}
}

func (b *Booking) ID() string                { return b.id }
func (b *Booking) CustomerName() string      { return b.customerName }
func (b *Booking) CustomerEmail() string     { return b.customerEmail }
func (b *Booking) CustomerPhone() string     { return b.customerPhone }
func (b *Booking) DeviceModelID() string     { return b.deviceModelID }
func (b *Booking) ProblemNote() string       { return b.problemNote }
func (b *Booking) Handover() HandoverMethod  { return b.handover }
func (b *Booking) ScheduledAt() time.Time    { return b.scheduledAt }
func (b *Booking) Status() BookingStatus     { return b.status }
func (b *Booking) Items() []BookingItem      { return b.items }
func (b *Booking) Surcharge() *catalog.Money { return b.surcharge.Copy() }
func (b *Booking) Total() *catalog.Money     { return b.total.Copy() }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
func (b *Booking) DomainEvents() []DomainEvent { return b.events }

// Start marks the repair as being worked on.
func (b *Booking) Start(now time.Time) error {
	if b.status != StatusBooked {
		return ErrInvalidTransition
	}
	return b.transition(StatusInProgress, now)
}

// Complete marks the repair as finished and ready for collection.
func (b *Booking) Complete(now time.Time) error {
	if b.status != StatusInProgress {
		return ErrInvalidTransition
	}
	return b.transition(StatusCompleted, now)
}

// Cancel voids a booking that has not been completed.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusBooked && b.status != StatusInProgress {
		return ErrInvalidTransition
	}
	return b.transition(StatusCancelled, now)
}

func (b *Booking) transition(status BookingStatus, now time.Time) error {
	b.status = status
	b.updatedAt = now
	b.recordEvent(&RepairStatusChangedEvent{
		BookingID: b.id,
		Status:    string(status),
		ChangedAt: now,
	})
	return nil
}

func (b *Booking) recordEvent(event DomainEvent) {
	b.events = append(b.events, event)
}

// ClearEvents clears all recorded domain events.
func (b *Booking) ClearEvents() {
	b.events = make([]DomainEvent, 0)
}
