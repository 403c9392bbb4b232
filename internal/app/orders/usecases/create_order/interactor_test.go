package create_order

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/payments"
)

type fakeOrderRepo struct {
	inserted *domain.Order
}

func (f *fakeOrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	f.inserted = order
	muts := make([]*spanner.Mutation, 0, len(order.Items())+1)
	muts = append(muts, spanner.Insert("orders", []string{}, []interface{}{}))
	for range order.Items() {
		muts = append(muts, spanner.Insert("order_items", []string{}, []interface{}{}))
	}
	return muts, nil
}

func (f *fakeOrderRepo) UpdateMut(order *domain.Order) *spanner.Mutation {
	return spanner.Insert("orders", []string{}, []interface{}{})
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	if f.inserted == nil || f.inserted.ID() != orderID {
		return nil, domain.ErrOrderNotFound
	}
	return f.inserted, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID string, limit int64) ([]*domain.Order, error) {
	return nil, nil
}

type fakeOrderOutbox struct {
	events []domain.DomainEvent
}

func (f *fakeOrderOutbox) InsertEventMut(event domain.DomainEvent, payload string) *spanner.Mutation {
	f.events = append(f.events, event)
	return spanner.Insert("outbox_events", []string{}, []interface{}{})
}

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
	updated  []*catalog.Variant
}

func (f *fakeVariantRepo) InsertMut(variant *catalog.Variant) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeVariantRepo) UpdateMut(variant *catalog.Variant) (*spanner.Mutation, error) {
	f.updated = append(f.updated, variant)
	return spanner.Insert("product_variants", []string{}, []interface{}{}), nil
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

type fakeProvider struct {
	captured   []payments.Charge
	refunded   []string
	captureErr error
}

func (f *fakeProvider) Capture(ctx context.Context, charge payments.Charge) (string, error) {
	if f.captureErr != nil {
		return "", f.captureErr
	}
	f.captured = append(f.captured, charge)
	return "pi_test", nil
}

func (f *fakeProvider) Refund(ctx context.Context, paymentRef string) error {
	f.refunded = append(f.refunded, paymentRef)
	return nil
}

type fakeApplier struct {
	plans []*committer.CommitPlan
	err   error
}

func (f *fakeApplier) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	if f.err != nil {
		return f.err
	}
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeApplier) ApplyWithVersionCheck(ctx context.Context, table string, key spanner.Key, versionColumn string, expectedVersion int64, plan *committer.CommitPlan) error {
	if f.err != nil {
		return f.err
	}
	f.plans = append(f.plans, plan)
	return nil
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

type fixture struct {
	interactor *Interactor
	orders     *fakeOrderRepo
	outbox     *fakeOrderOutbox
	variants   *fakeVariantRepo
	provider   *fakeProvider
	applier    *fakeApplier
}

// One active product "prod-1" at 100.00 base with a permanent 30% variant
// discount on "var-1" (+20.00 adjustment, stock 10), in a category with 5%.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)

	product, err := catalog.NewProduct("prod-1", "Pixel 9 Screen", "OLED replacement screen", "cat-parts", money(t, 100, 1), now, clk)
	require.NoError(t, err)
	require.NoError(t, product.Activate(now))
	product.ClearEvents()

	variant, err := catalog.NewVariant("var-1", "prod-1", "With fitting", "SKU-FIT", money(t, 20, 1), 10, now)
	require.NoError(t, err)
	variant.SetDiscount(catalog.PermanentDiscount(percent(t, 30)))

	f := &fixture{
		orders:   &fakeOrderRepo{},
		outbox:   &fakeOrderOutbox{},
		variants: &fakeVariantRepo{variants: map[string]*catalog.Variant{"var-1": variant}},
		provider: &fakeProvider{},
		applier:  &fakeApplier{},
	}

	f.interactor = NewInteractor(
		f.orders,
		f.outbox,
		&fakeProductRepo{products: map[string]*catalog.Product{"prod-1": product}},
		f.variants,
		&fakeCategoryRepo{discounts: map[string]catalog.Percent{"cat-parts": percent(t, 5)}},
		f.provider,
		f.applier,
		clk,
		money(t, 799, 100),
		"usd",
	)
	return f
}

func TestExecute_PricesChargesAndCommits(t *testing.T) {
	f := newFixture(t)

	result, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryPickup,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 2}},
	})

	require.NoError(t, err)
	// (100 + 20) at the 30% variant discount = 84.00 per unit, two units.
	assert.Equal(t, "168.00", result.Total.String())

	require.Len(t, f.provider.captured, 1)
	assert.Equal(t, int64(16800), f.provider.captured[0].AmountMinor)
	assert.Equal(t, "usd", f.provider.captured[0].Currency)

	require.NotNil(t, f.orders.inserted)
	assert.Equal(t, domain.StatusPaid, f.orders.inserted.Status())
	assert.Equal(t, "pi_test", f.orders.inserted.PaymentRef())

	// The item captures the effective percent alongside both prices.
	require.Len(t, f.orders.inserted.Items(), 1)
	item := f.orders.inserted.Items()[0]
	assert.Equal(t, "30", item.DiscountPercent.String())
	assert.Equal(t, "84.00", item.UnitPrice.String())
	assert.Equal(t, "120.00", item.OriginalUnitPrice.String())

	// Stock reserved in the same plan.
	require.Len(t, f.variants.updated, 1)
	assert.Equal(t, int64(8), f.variants.updated[0].Stock())

	// Stock update, order row, one item row, placed + paid events.
	require.Len(t, f.applier.plans, 1)
	assert.Equal(t, 5, f.applier.plans[0].Count())
}

func TestExecute_CourierAddsSurcharge(t *testing.T) {
	f := newFixture(t)

	result, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryCourier,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "91.99", result.Total.String()) // 84.00 + 7.99
}

func TestExecute_RejectsInsufficientStock(t *testing.T) {
	f := newFixture(t)

	_, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryPickup,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 11}},
	})

	assert.ErrorIs(t, err, domain.ErrOutOfStock)
	assert.Empty(t, f.provider.captured)
	assert.Empty(t, f.applier.plans)
}

func TestExecute_RejectsZeroQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryPickup,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 0}},
	})

	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)
}

func TestExecute_DeclinedPaymentAbortsOrder(t *testing.T) {
	f := newFixture(t)
	f.provider.captureErr = payments.ErrPaymentDeclined

	_, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryPickup,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 1}},
	})

	assert.ErrorIs(t, err, payments.ErrPaymentDeclined)
	assert.Empty(t, f.applier.plans)
}

func TestExecute_CommitFailureRefundsCharge(t *testing.T) {
	f := newFixture(t)
	f.applier.err = errors.New("spanner unavailable")

	_, err := f.interactor.Execute(context.Background(), &Request{
		CustomerID:     "cust-1",
		DeliveryMethod: domain.DeliveryPickup,
		PaymentMethod:  "pm_card",
		Lines:          []LineRequest{{ProductID: "prod-1", VariantID: "var-1", Quantity: 1}},
	})

	require.Error(t, err)
	require.Len(t, f.provider.refunded, 1)
	assert.Equal(t, "pi_test", f.provider.refunded[0])
}
