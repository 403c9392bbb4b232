package apply_discount

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

type fakeProductRepo struct {
	product *domain.Product
}

func (f *fakeProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	return spanner.Insert("products", []string{}, []interface{}{}), nil
}

func (f *fakeProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	return spanner.Insert("products", []string{}, []interface{}{}), nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	if f.product == nil || f.product.ID() != productID {
		return nil, domain.ErrProductNotFound
	}
	return f.product, nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	return f.product != nil && f.product.ID() == productID, nil
}

type fakeOutboxRepo struct {
	events []*contracts.OutboxEvent
}

func (f *fakeOutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	f.events = append(f.events, event)
	return spanner.Insert("outbox_events", []string{}, []interface{}{})
}

func (f *fakeOutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     "event-1",
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "pending",
	}
}

type fakeApplier struct {
	plans []*committer.CommitPlan
}

func (f *fakeApplier) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakeApplier) ApplyWithVersionCheck(ctx context.Context, table string, key spanner.Key, versionColumn string, expectedVersion int64, plan *committer.CommitPlan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func mustPercent(t *testing.T, n int64) domain.Percent {
	t.Helper()
	p, err := domain.NewPercentFromInt(n)
	require.NoError(t, err)
	return p
}

func testProduct(t *testing.T, now time.Time) *domain.Product {
	t.Helper()
	price, err := domain.NewMoney(19999, 100)
	require.NoError(t, err)
	product, err := domain.NewProduct("prod-1", "USB-C Charger", "65W GaN charger", "cat-chargers", price, now, clock.NewMockClock(now))
	require.NoError(t, err)
	product.ClearEvents()
	return product
}

func TestExecute_AppliesWindowedDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	repo := &fakeProductRepo{product: testProduct(t, now)}
	outbox := &fakeOutboxRepo{}
	applier := &fakeApplier{}
	interactor := NewInteractor(repo, outbox, applier, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		Percent:   mustPercent(t, 25),
		StartDate: &start,
		EndDate:   &end,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.product.Discount())
	assert.Equal(t, "25", repo.product.Discount().Percent().String())

	require.Len(t, applier.plans, 1)
	assert.Equal(t, 2, applier.plans[0].Count())
	require.Len(t, outbox.events, 1)
	assert.Equal(t, "product.discount_applied", outbox.events[0].EventType)
}

func TestExecute_RejectsSecondDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	product := testProduct(t, now)
	require.NoError(t, product.ApplyDiscount(domain.PermanentDiscount(mustPercent(t, 10)), now))
	product.ClearEvents()

	repo := &fakeProductRepo{product: product}
	interactor := NewInteractor(repo, &fakeOutboxRepo{}, &fakeApplier{}, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		Percent:   mustPercent(t, 25),
	})

	assert.ErrorIs(t, err, domain.ErrDiscountAlreadySet)
}

func TestExecute_RejectsInvertedWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	repo := &fakeProductRepo{product: testProduct(t, now)}
	interactor := NewInteractor(repo, &fakeOutboxRepo{}, &fakeApplier{}, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		Percent:   mustPercent(t, 25),
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidDiscountWindow)
	assert.True(t, domain.IsValidation(err))
}

func TestExecute_UnknownProduct(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	interactor := NewInteractor(&fakeProductRepo{}, &fakeOutboxRepo{}, &fakeApplier{}, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-missing",
		Percent:   mustPercent(t, 25),
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
