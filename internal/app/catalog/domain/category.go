package domain

import "time"

// Category groups products and carries the storewide promotional percentage.
// The category discount has no window; it is active whenever non-zero.
type Category struct {
	id        string
	name      string
	discount  Percent
	createdAt time.Time
	updatedAt time.Time
}

// NewCategory creates a new Category with validation.
func NewCategory(id, name string, discount Percent, now time.Time) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		id:        id,
		name:      name,
		discount:  discount,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCategory reconstitutes a Category from database rows.
func ReconstructCategory(id, name string, discount Percent, createdAt, updatedAt time.Time) *Category {
	return &Category{
		id:        id,
		name:      name,
		discount:  discount,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Category) ID() string           { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Discount() Percent    { return c.discount }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// SetDiscount replaces the category-wide promotional percentage.
func (c *Category) SetDiscount(discount Percent) {
	c.discount = discount
}

// Rename changes the category's display name.
func (c *Category) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.name = name
	return nil
}
