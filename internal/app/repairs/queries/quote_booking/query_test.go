package quote_booking

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

type fakeProductRepo struct {
	products map[string]*catalog.Product
}

func (f *fakeProductRepo) InsertMut(product *catalog.Product) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeProductRepo) UpdateMut(product *catalog.Product) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, productID string) (*catalog.Product, error) {
	product, ok := f.products[productID]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return product, nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, ok := f.products[productID]
	return ok, nil
}

type fakeVariantRepo struct {
	variants map[string]*catalog.Variant
}

func (f *fakeVariantRepo) InsertMut(variant *catalog.Variant) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeVariantRepo) UpdateMut(variant *catalog.Variant) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeVariantRepo) GetByID(ctx context.Context, productID, variantID string) (*catalog.Variant, error) {
	variant, ok := f.variants[variantID]
	if !ok || variant.ProductID() != productID {
		return nil, catalog.ErrVariantNotFound
	}
	return variant, nil
}

func (f *fakeVariantRepo) ListByProduct(ctx context.Context, productID string) ([]*catalog.Variant, error) {
	return nil, nil
}

type fakeCategoryRepo struct {
	discounts map[string]catalog.Percent
}

func (f *fakeCategoryRepo) InsertMut(category *catalog.Category) *spanner.Mutation { return nil }
func (f *fakeCategoryRepo) UpdateMut(category *catalog.Category) *spanner.Mutation { return nil }

func (f *fakeCategoryRepo) GetByID(ctx context.Context, categoryID string) (*catalog.Category, error) {
	return nil, catalog.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) DiscountFor(ctx context.Context, categoryID string) (catalog.Percent, error) {
	return f.discounts[categoryID], nil
}

func money(t *testing.T, num, denom int64) *catalog.Money {
	t.Helper()
	m, err := catalog.NewMoney(num, denom)
	require.NoError(t, err)
	return m
}

func percent(t *testing.T, n int64) catalog.Percent {
	t.Helper()
	p, err := catalog.NewPercentFromInt(n)
	require.NoError(t, err)
	return p
}

// Same shop as the booking tests: "prod-1" at 100.00 base in a 5% category,
// variant "var-1" adding 20.00 with a permanent 30% discount of its own.
func newQuery(t *testing.T) *Query {
	t.Helper()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	product, err := catalog.NewProduct("prod-1", "Screen replacement", "OLED panel swap", "cat-parts", money(t, 100, 1), now, clk)
	require.NoError(t, err)
	require.NoError(t, product.Activate(now))

	variant, err := catalog.NewVariant("var-1", "prod-1", "With waterproofing", "SKU-WP", money(t, 20, 1), 10, now)
	require.NoError(t, err)
	variant.SetDiscount(catalog.PermanentDiscount(percent(t, 30)))

	return NewQuery(
		&fakeProductRepo{products: map[string]*catalog.Product{"prod-1": product}},
		&fakeVariantRepo{variants: map[string]*catalog.Variant{"var-1": variant}},
		&fakeCategoryRepo{discounts: map[string]catalog.Percent{"cat-parts": percent(t, 5)}},
		clk,
		money(t, 799, 100),
	)
}

func TestExecute_PricesCourierQuote(t *testing.T) {
	q := newQuery(t)

	quote, err := q.Execute(context.Background(), &Request{
		Handover: domain.HandoverCourier,
		Lines:    []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 2}},
	})

	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)

	// (100 + 20) at the 30% variant discount = 84.00 per unit.
	line := quote.Lines[0]
	assert.Equal(t, "Screen replacement (With waterproofing)", line.Name)
	assert.Equal(t, "84.00", line.UnitPrice)
	assert.Equal(t, "120.00", line.OriginalPrice)
	assert.Equal(t, "30", line.DiscountPercent)
	assert.Equal(t, "168.00", line.LineTotal)

	assert.Equal(t, "7.99", quote.Surcharge)
	assert.Equal(t, "175.99", quote.Total)
}

func TestExecute_DropoffSkipsSurcharge(t *testing.T) {
	q := newQuery(t)

	quote, err := q.Execute(context.Background(), &Request{
		Handover: domain.HandoverDropoff,
		Lines:    []LineRequest{{ProductID: "prod-1", Quantity: 1}},
	})

	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)

	// No variant: the 5% category discount applies to the bare service.
	assert.Equal(t, "95.00", quote.Lines[0].UnitPrice)
	assert.Equal(t, "5", quote.Lines[0].DiscountPercent)
	assert.Equal(t, "0.00", quote.Surcharge)
	assert.Equal(t, "95.00", quote.Total)
}

func TestExecute_RejectsBadInput(t *testing.T) {
	q := newQuery(t)

	_, err := q.Execute(context.Background(), &Request{
		Handover: domain.HandoverDropoff,
		Lines:    []LineRequest{{ProductID: "prod-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)

	_, err = q.Execute(context.Background(), &Request{
		Handover: domain.HandoverDropoff,
		Lines:    []LineRequest{{ProductID: "prod-missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	_, err = q.Execute(context.Background(), &Request{Handover: "teleport"})
	assert.ErrorIs(t, err, domain.ErrInvalidHandover)
}
