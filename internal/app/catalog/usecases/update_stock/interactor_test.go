package update_stock

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

type fakeVariantRepo struct {
	variant *domain.Variant
}

func (f *fakeVariantRepo) InsertMut(variant *domain.Variant) (*spanner.Mutation, error) {
	return spanner.Insert("product_variants", []string{}, []interface{}{}), nil
}

func (f *fakeVariantRepo) UpdateMut(variant *domain.Variant) (*spanner.Mutation, error) {
	return spanner.Insert("product_variants", []string{}, []interface{}{}), nil
}

func (f *fakeVariantRepo) GetByID(ctx context.Context, productID, variantID string) (*domain.Variant, error) {
	if f.variant == nil || f.variant.ProductID() != productID || f.variant.ID() != variantID {
		return nil, domain.ErrVariantNotFound
	}
	return f.variant, nil
}

func (f *fakeVariantRepo) ListByProduct(ctx context.Context, productID string) ([]*domain.Variant, error) {
	if f.variant == nil {
		return nil, nil
	}
	return []*domain.Variant{f.variant}, nil
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

func testVariant(t *testing.T, now time.Time) *domain.Variant {
	t.Helper()
	adjustment, err := domain.NewMoney(500, 100)
	require.NoError(t, err)
	variant, err := domain.NewVariant("var-1", "prod-1", "256GB / Black", "SKU-256-BLK", adjustment, 10, now)
	require.NoError(t, err)
	return variant
}

func TestExecute_SetsStockAndEmitsEvent(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeVariantRepo{variant: testVariant(t, now)}
	outbox := &fakeOutboxRepo{}
	applier := &fakeApplier{}
	interactor := NewInteractor(repo, outbox, applier, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		VariantID: "var-1",
		Stock:     3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), repo.variant.Stock())

	require.Len(t, applier.plans, 1)
	assert.Equal(t, 2, applier.plans[0].Count())
	require.Len(t, outbox.events, 1)
	assert.Equal(t, "product.stock_changed", outbox.events[0].EventType)
}

func TestExecute_RejectsNegativeStock(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeVariantRepo{variant: testVariant(t, now)}
	interactor := NewInteractor(repo, &fakeOutboxRepo{}, &fakeApplier{}, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		VariantID: "var-1",
		Stock:     -1,
	})

	assert.ErrorIs(t, err, domain.ErrNegativeStock)
}

func TestExecute_UnknownVariant(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	interactor := NewInteractor(&fakeVariantRepo{}, &fakeOutboxRepo{}, &fakeApplier{}, clock.NewMockClock(now))

	err := interactor.Execute(context.Background(), &Request{
		ProductID: "prod-1",
		VariantID: "var-missing",
		Stock:     5,
	})

	assert.ErrorIs(t, err, domain.ErrVariantNotFound)
}
