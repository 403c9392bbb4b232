package create_product

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request contains the data needed to create a product.
type Request struct {
	Name        string
	Description string
	CategoryID  string
	BasePrice   *domain.Money
	ImageURL    string
}

// Interactor handles the create product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	categories contracts.CategoryRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new create product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categories contracts.CategoryRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		categories: categories,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute creates a new product and commits it together with its outbox events.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if err := i.validate(req); err != nil {
		return "", err
	}

	// The category must exist before products can reference it.
	if _, err := i.categories.GetByID(ctx, req.CategoryID); err != nil {
		return "", err
	}

	productID := uuid.New().String()
	now := i.clock.Now()

	product, err := domain.NewProduct(
		productID,
		req.Name,
		req.Description,
		req.CategoryID,
		req.BasePrice,
		now,
		i.clock,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	if req.ImageURL != "" {
		if err := product.SetImageURL(req.ImageURL); err != nil {
			return "", err
		}
	}

	plan := committer.NewPlan()

	insertMut, err := i.repo.InsertMut(product)
	if err != nil {
		return "", err
	}
	plan.Add(insertMut)

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return "", fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return product.ID(), nil
}

func (i *Interactor) validate(req *Request) error {
	if req.Name == "" {
		return domain.ErrEmptyName
	}
	if req.CategoryID == "" {
		return domain.ErrInvalidCategory
	}
	if req.BasePrice == nil || req.BasePrice.IsNegative() || req.BasePrice.IsZero() {
		return domain.ErrInvalidPrice
	}
	return nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
