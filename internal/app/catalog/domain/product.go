package domain

import (
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategoryID  = "category_id"
	FieldImageURL    = "image_url"
	FieldBasePrice   = "base_price"
	FieldDiscount    = "discount"
	FieldStatus      = "status"
	FieldArchivedAt  = "archived_at"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	StatusDraft    ProductStatus = "draft"
	StatusActive   ProductStatus = "active"
	StatusArchived ProductStatus = "archived"
)

// Product is the aggregate root for catalog items: accessories, repair parts and
// refurbished devices all share this shape. Pricing-relevant fields (base price,
// discount, category) are read fresh at evaluation time; effective prices are
// never persisted as derived values.
type Product struct {
	id          string
	name        string
	description string
	categoryID  string
	imageURL    string
	basePrice   *Money
	discount    *Discount
	status      ProductStatus
	version     int64
	createdAt   time.Time
	updatedAt   time.Time
	archivedAt  *time.Time

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewProduct creates a new Product aggregate (for creation).
func NewProduct(id, name, description, categoryID string, basePrice *Money, now time.Time, clk clock.Clock) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if categoryID == "" {
		return nil, ErrInvalidCategory
	}
	if basePrice == nil || basePrice.IsNegative() || basePrice.IsZero() {
		return nil, ErrInvalidPrice
	}

	p := &Product{
		id:          id,
		name:        name,
		description: description,
		categoryID:  categoryID,
		basePrice:   basePrice.Copy(),
		status:      StatusDraft,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	p.changes.MarkDirty(FieldName)
	p.changes.MarkDirty(FieldDescription)
	p.changes.MarkDirty(FieldCategoryID)
	p.changes.MarkDirty(FieldBasePrice)
	p.changes.MarkDirty(FieldStatus)

	p.recordEvent(&ProductCreatedEvent{
		ProductID:  p.id,
		Name:       p.name,
		CategoryID: p.categoryID,
		BasePrice:  p.basePrice.String(),
		Status:     string(p.status),
		CreatedAt:  p.createdAt,
	})

	return p, nil
}

// ReconstructProduct reconstitutes a Product from database rows.
func ReconstructProduct(
	id, name, description, categoryID, imageURL string,
	basePrice *Money,
	discount *Discount,
	status ProductStatus,
	version int64,
	createdAt, updatedAt time.Time,
	archivedAt *time.Time,
	clk clock.Clock,
) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		categoryID:  categoryID,
		imageURL:    imageURL,
		basePrice:   basePrice,
		discount:    discount,
		status:      status,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		archivedAt:  archivedAt,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}
}

// Getters
func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) Description() string         { return p.description }
func (p *Product) CategoryID() string          { return p.categoryID }
func (p *Product) ImageURL() string            { return p.imageURL }
func (p *Product) BasePrice() *Money           { return p.basePrice.Copy() }
func (p *Product) Discount() *Discount         { return p.discount.Copy() }
func (p *Product) Status() ProductStatus       { return p.status }
func (p *Product) Version() int64              { return p.version }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Product) ArchivedAt() *time.Time      { return p.archivedAt }
func (p *Product) Changes() *ChangeTracker     { return p.changes }
func (p *Product) DomainEvents() []DomainEvent { return p.events }

// SetName updates the product name.
func (p *Product) SetName(name string) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}

	p.name = name
	p.changes.MarkDirty(FieldName)
	p.recordUpdated()
	return nil
}

// SetDescription updates the product description.
func (p *Product) SetDescription(description string) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}

	p.description = description
	p.changes.MarkDirty(FieldDescription)
	p.recordUpdated()
	return nil
}

// SetCategory moves the product to another category.
func (p *Product) SetCategory(categoryID string) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if categoryID == "" {
		return ErrInvalidCategory
	}

	p.categoryID = categoryID
	p.changes.MarkDirty(FieldCategoryID)
	p.recordUpdated()
	return nil
}

// SetImageURL updates the product image location.
func (p *Product) SetImageURL(url string) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}

	p.imageURL = url
	p.changes.MarkDirty(FieldImageURL)
	p.recordUpdated()
	return nil
}

// SetBasePrice updates the product base price.
func (p *Product) SetBasePrice(price *Money) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if price == nil || price.IsNegative() || price.IsZero() {
		return ErrInvalidPrice
	}

	p.basePrice = price.Copy()
	p.changes.MarkDirty(FieldBasePrice)
	p.recordUpdated()
	return nil
}

// ApplyDiscount sets the product-level discount. An existing discount must be
// removed first; replacing silently would hide pricing mistakes from admins.
func (p *Product) ApplyDiscount(discount *Discount, now time.Time) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if p.discount != nil {
		return ErrDiscountAlreadySet
	}

	p.discount = discount.Copy()
	p.changes.MarkDirty(FieldDiscount)

	p.recordEvent(&DiscountAppliedEvent{
		ProductID:       p.id,
		DiscountPercent: discount.Percent().String(),
		StartDate:       discount.Start(),
		EndDate:         discount.End(),
		AppliedAt:       now,
	})
	return nil
}

// RemoveDiscount clears the product-level discount.
func (p *Product) RemoveDiscount(now time.Time) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}

	p.discount = nil
	p.changes.MarkDirty(FieldDiscount)

	p.recordEvent(&DiscountRemovedEvent{
		ProductID: p.id,
		RemovedAt: now,
	})
	return nil
}

// Activate makes the product available to storefront and repair flows.
func (p *Product) Activate(now time.Time) error {
	if err := p.checkNotArchived(); err != nil {
		return err
	}
	if p.status == StatusActive {
		return ErrAlreadyActive
	}

	p.status = StatusActive
	p.changes.MarkDirty(FieldStatus)

	p.recordEvent(&ProductActivatedEvent{
		ProductID: p.id,
		Timestamp: now,
	})
	return nil
}

// Archive removes the product from sale (soft delete).
func (p *Product) Archive(now time.Time) error {
	if p.status == StatusArchived {
		return ErrAlreadyArchived
	}

	p.status = StatusArchived
	p.archivedAt = &now
	p.changes.MarkDirty(FieldStatus)
	p.changes.MarkDirty(FieldArchivedAt)

	p.recordEvent(&ProductArchivedEvent{
		ProductID:  p.id,
		ArchivedAt: now,
	})
	return nil
}

// IsActive returns true if the product is active.
func (p *Product) IsActive() bool {
	return p.status == StatusActive
}

// IsArchived returns true if the product is archived.
func (p *Product) IsArchived() bool {
	return p.status == StatusArchived
}

// HasActiveDiscount returns true if the product has a discount active at the given time.
func (p *Product) HasActiveDiscount(now time.Time) bool {
	return p.discount != nil && p.discount.ActiveAt(now)
}

func (p *Product) checkNotArchived() error {
	if p.status == StatusArchived {
		return ErrCannotModifyArchived
	}
	return nil
}

func (p *Product) recordUpdated() {
	p.recordEvent(&ProductUpdatedEvent{
		ProductID:  p.id,
		Name:       p.name,
		CategoryID: p.categoryID,
		UpdatedAt:  p.clock.Now(),
	})
}

func (p *Product) recordEvent(event DomainEvent) {
	p.events = append(p.events, event)
}

// ClearEvents clears all recorded domain events (called after publishing).
func (p *Product) ClearEvents() {
	p.events = make([]DomainEvent, 0)
}
