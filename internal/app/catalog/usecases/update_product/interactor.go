package update_product

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request contains the fields to update. Nil pointers leave the field as is.
type Request struct {
	ProductID       string
	ExpectedVersion int64
	Name            *string
	Description     *string
	CategoryID      *string
	ImageURL        *string
	BasePrice       *domain.Money
}

// Interactor handles the update product use case.
type Interactor struct {
	repo       contracts.ProductRepository
	categories contracts.CategoryRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
}

// NewInteractor creates a new update product interactor.
func NewInteractor(
	repo contracts.ProductRepository,
	categories contracts.CategoryRepository,
	outboxRepo contracts.OutboxRepository,
	committer committer.Applier,
) *Interactor {
	return &Interactor{
		repo:       repo,
		categories: categories,
		outboxRepo: outboxRepo,
		committer:  committer,
	}
}

// Execute updates a product under an optimistic version check so concurrent
// admin edits cannot silently overwrite each other.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	product, err := i.repo.GetByID(ctx, req.ProductID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return err
		}
	}

	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return err
		}
	}

	if req.CategoryID != nil {
		if _, err := i.categories.GetByID(ctx, *req.CategoryID); err != nil {
			return err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return err
		}
	}

	if req.ImageURL != nil {
		if err := product.SetImageURL(*req.ImageURL); err != nil {
			return err
		}
	}

	if req.BasePrice != nil {
		if err := product.SetBasePrice(req.BasePrice); err != nil {
			return err
		}
	}

	plan := committer.NewPlan()

	updateMut, err := i.repo.UpdateMut(product)
	if err != nil {
		return err
	}
	if updateMut == nil {
		return nil // nothing changed
	}
	plan.Add(updateMut)

	for _, event := range product.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	return i.committer.ApplyWithVersionCheck(
		ctx,
		m_product.TableName,
		spanner.Key{product.ID()},
		m_product.Version,
		req.ExpectedVersion,
		plan,
	)
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
