package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_category"
)

// CategoryRepo implements CategoryRepository for Spanner.
type CategoryRepo struct {
	client *spanner.Client
	model  *m_category.Model
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(client *spanner.Client) contracts.CategoryRepository {
	return &CategoryRepo{
		client: client,
		model:  m_category.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new category.
func (r *CategoryRepo) InsertMut(category *domain.Category) *spanner.Mutation {
	return r.model.InsertMut(&m_category.Data{
		CategoryID:      category.ID(),
		Name:            category.Name(),
		DiscountPercent: *category.Discount().Rat(),
		CreatedAt:       category.CreatedAt(),
		UpdatedAt:       category.UpdatedAt(),
	})
}

// UpdateMut creates a mutation for updating a category's discount.
func (r *CategoryRepo) UpdateMut(category *domain.Category) *spanner.Mutation {
	return r.model.UpdateMut(category.ID(), map[string]interface{}{
		m_category.Name:            category.Name(),
		m_category.DiscountPercent: *category.Discount().Rat(),
	})
}

// GetByID retrieves a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row, err := r.client.Single().ReadRow(ctx, m_category.TableName, spanner.Key{categoryID}, m_category.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to read category: %w", err)
	}

	var data m_category.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse category: %w", err)
	}

	discount, err := domain.NewPercent(&data.DiscountPercent)
	if err != nil {
		return nil, fmt.Errorf("stored category discount out of range: %w", err)
	}

	return domain.ReconstructCategory(data.CategoryID, data.Name, discount, data.CreatedAt, data.UpdatedAt), nil
}

// DiscountFor returns the category-level discount percentage. A missing
// category yields a zero percent so pricing never fails on a dangling
// category reference.
func (r *CategoryRepo) DiscountFor(ctx context.Context, categoryID string) (domain.Percent, error) {
	if categoryID == "" {
		return domain.ZeroPercent(), nil
	}

	category, err := r.GetByID(ctx, categoryID)
	if err != nil {
		if err == domain.ErrCategoryNotFound {
			return domain.ZeroPercent(), nil
		}
		return domain.ZeroPercent(), err
	}
	return category.Discount(), nil
}
