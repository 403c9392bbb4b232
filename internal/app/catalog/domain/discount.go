package domain

import (
	"time"
)

// Discount represents a percentage discount with an optional validity window.
// A nil start means the discount is active immediately; a nil end means it never
// expires. A Discount with percent zero is an explicit "no discount" and is distinct
// from a discount that is absent altogether (a nil *Discount).
type Discount struct {
	percent Percent
	start   *time.Time
	end     *time.Time
}

// NewDiscount creates a new Discount with validation.
// Window bounds, when present, must be in UTC to prevent timezone skew between
// server-computed totals and client-displayed prices.
func NewDiscount(percent Percent, start, end *time.Time) (*Discount, error) {
	if start != nil && start.Location() != time.UTC {
		return nil, ErrWindowNotUTC
	}
	if end != nil && end.Location() != time.UTC {
		return nil, ErrWindowNotUTC
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, ErrInvalidDiscountWindow
	}

	d := &Discount{percent: percent}
	if start != nil {
		s := *start
		d.start = &s
	}
	if end != nil {
		e := *end
		d.end = &e
	}
	return d, nil
}

// PermanentDiscount creates a Discount with no validity window.
func PermanentDiscount(percent Percent) *Discount {
	return &Discount{percent: percent}
}

// Percent returns the discount percentage.
func (d *Discount) Percent() Percent {
	return d.percent
}

// Start returns the window start, nil when unbounded.
func (d *Discount) Start() *time.Time {
	if d.start == nil {
		return nil
	}
	s := *d.start
	return &s
}

// End returns the window end, nil when unbounded.
func (d *Discount) End() *time.Time {
	if d.end == nil {
		return nil
	}
	e := *d.end
	return &e
}

// ActiveAt checks if the discount is active at the given time.
// The window is INCLUSIVE on both ends; a missing bound is unbounded on that side.
func (d *Discount) ActiveAt(t time.Time) bool {
	if d.start != nil && t.Before(*d.start) {
		return false
	}
	if d.end != nil && t.After(*d.end) {
		return false
	}
	return true
}

// Copy creates a deep copy of this Discount.
func (d *Discount) Copy() *Discount {
	if d == nil {
		return nil
	}
	c := &Discount{percent: d.percent}
	if d.start != nil {
		s := *d.start
		c.start = &s
	}
	if d.end != nil {
		e := *d.end
		c.end = &e
	}
	return c
}
