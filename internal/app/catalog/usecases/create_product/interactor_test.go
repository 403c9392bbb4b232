package create_product

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
	inserted *domain.Product
}

func (f *fakeProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	f.inserted = product
	return spanner.Insert("products", []string{}, []interface{}{}), nil
}

func (f *fakeProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	return nil, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func (f *fakeProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	return false, nil
}

type fakeCategoryRepo struct {
	categories map[string]*domain.Category
}

func (f *fakeCategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	return spanner.Insert("categories", []string{}, []interface{}{})
}

func (f *fakeCategoryRepo) UpdateMut(category *domain.Category) *spanner.Mutation {
	return spanner.Insert("categories", []string{}, []interface{}{})
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, ok := f.categories[categoryID]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) DiscountFor(ctx context.Context, categoryID string) (domain.Percent, error) {
	category, ok := f.categories[categoryID]
	if !ok {
		return domain.ZeroPercent(), nil
	}
	return category.Discount(), nil
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

func mustMoney(t *testing.T, num, denom int64) *domain.Money {
	t.Helper()
	m, err := domain.NewMoney(num, denom)
	require.NoError(t, err)
	return m
}

func newFixture(t *testing.T) (*Interactor, *fakeProductRepo, *fakeOutboxRepo, *fakeApplier) {
	t.Helper()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeProductRepo{}
	outbox := &fakeOutboxRepo{}
	applier := &fakeApplier{}
	categories := &fakeCategoryRepo{categories: map[string]*domain.Category{}}

	accessories, err := domain.NewCategory("cat-accessories", "Accessories", domain.ZeroPercent(), now)
	require.NoError(t, err)
	categories.categories["cat-accessories"] = accessories

	interactor := NewInteractor(repo, categories, outbox, applier, clock.NewMockClock(now))
	return interactor, repo, outbox, applier
}

func TestExecute_CreatesProductWithOutboxEvent(t *testing.T) {
	interactor, repo, outbox, applier := newFixture(t)

	id, err := interactor.Execute(context.Background(), &Request{
		Name:        "iPhone 15 Case",
		Description: "Clear silicone case",
		CategoryID:  "cat-accessories",
		BasePrice:   mustMoney(t, 1999, 100),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NotNil(t, repo.inserted)
	assert.Equal(t, "iPhone 15 Case", repo.inserted.Name())
	assert.Equal(t, "cat-accessories", repo.inserted.CategoryID())

	// Product insert and the created event land in the same plan.
	require.Len(t, applier.plans, 1)
	assert.Equal(t, 2, applier.plans[0].Count())
	require.Len(t, outbox.events, 1)
	assert.Equal(t, "product.created", outbox.events[0].EventType)
}

func TestExecute_RejectsEmptyName(t *testing.T) {
	interactor, _, _, applier := newFixture(t)

	_, err := interactor.Execute(context.Background(), &Request{
		Name:       "",
		CategoryID: "cat-accessories",
		BasePrice:  mustMoney(t, 1999, 100),
	})

	assert.ErrorIs(t, err, domain.ErrEmptyName)
	assert.True(t, domain.IsValidation(err))
	assert.Empty(t, applier.plans)
}

func TestExecute_RejectsNonPositivePrice(t *testing.T) {
	interactor, _, _, _ := newFixture(t)

	_, err := interactor.Execute(context.Background(), &Request{
		Name:       "Screen Protector",
		CategoryID: "cat-accessories",
		BasePrice:  mustMoney(t, 0, 1),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestExecute_RejectsUnknownCategory(t *testing.T) {
	interactor, _, _, _ := newFixture(t)

	_, err := interactor.Execute(context.Background(), &Request{
		Name:       "Screen Protector",
		CategoryID: "cat-missing",
		BasePrice:  mustMoney(t, 999, 100),
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.True(t, domain.IsNotFound(err))
}
