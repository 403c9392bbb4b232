package domain

import "time"

// Variant is a purchasable configuration of a product (color, capacity, grade).
// Its price adjustment is a signed delta on the product's base price. A variant
// discount, when set, entirely replaces the product discount for that variant;
// a nil discount means "unset" and falls back to the product's.
type Variant struct {
	id              string
	productID       string
	name            string
	sku             string
	priceAdjustment *Money
	discount        *Discount
	stock           int64
	createdAt       time.Time
	updatedAt       time.Time
}

// NewVariant creates a new Variant with validation.
func NewVariant(id, productID, name, sku string, priceAdjustment *Money, stock int64, now time.Time) (*Variant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if priceAdjustment == nil {
		priceAdjustment = ZeroMoney()
	}

	return &Variant{
		id:              id,
		productID:       productID,
		name:            name,
		sku:             sku,
		priceAdjustment: priceAdjustment.Copy(),
		stock:           stock,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructVariant reconstitutes a Variant from database rows.
func ReconstructVariant(
	id, productID, name, sku string,
	priceAdjustment *Money,
	discount *Discount,
	stock int64,
	createdAt, updatedAt time.Time,
) *Variant {
	return &Variant{
		id:              id,
		productID:       productID,
		name:            name,
		sku:             sku,
		priceAdjustment: priceAdjustment,
		discount:        discount,
		stock:           stock,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Getters
func (v *Variant) ID() string              { return v.id }
func (v *Variant) ProductID() string       { return v.productID }
func (v *Variant) Name() string            { return v.name }
func (v *Variant) SKU() string             { return v.sku }
func (v *Variant) PriceAdjustment() *Money { return v.priceAdjustment.Copy() }
func (v *Variant) Discount() *Discount     { return v.discount.Copy() }
func (v *Variant) Stock() int64            { return v.stock }
func (v *Variant) CreatedAt() time.Time    { return v.createdAt }
func (v *Variant) UpdatedAt() time.Time    { return v.updatedAt }

// SetDiscount sets or clears the variant-level discount.
// Passing nil reverts the variant to the product-level discount.
func (v *Variant) SetDiscount(discount *Discount) {
	v.discount = discount.Copy()
}

// SetStock replaces the stock level.
func (v *Variant) SetStock(stock int64) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	v.stock = stock
	return nil
}

// AdjustStock applies a signed stock delta.
func (v *Variant) AdjustStock(delta int64) error {
	if v.stock+delta < 0 {
		return ErrNegativeStock
	}
	v.stock += delta
	return nil
}

// InStock reports whether at least the requested quantity is available.
func (v *Variant) InStock(quantity int64) bool {
	return quantity > 0 && v.stock >= quantity
}
