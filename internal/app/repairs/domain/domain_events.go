package domain

import "time"

// DomainEvent is the base interface for repair events. Events share the
// outbox table with catalog and order events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// RepairBookedEvent is emitted when a repair appointment is booked.
type RepairBookedEvent struct {
	BookingID     string
	DeviceModelID string
	ScheduledAt   time.Time
	Total         string
	BookedAt      time.Time
}

func (e *RepairBookedEvent) EventType() string   { return "repair.booked" }
func (e *RepairBookedEvent) AggregateID() string { return e.BookingID }

// RepairStatusChangedEvent is emitted on every booking status transition.
type RepairStatusChangedEvent struct {
	BookingID string
	Status    string
	ChangedAt time.Time
}

func (e *RepairStatusChangedEvent) EventType() string   { return "repair.status_changed" }
func (e *RepairStatusChangedEvent) AggregateID() string { return e.BookingID }
