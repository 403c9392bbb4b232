package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_variant"
)

// VariantRepo implements VariantRepository for Spanner.
type VariantRepo struct {
	client *spanner.Client
	model  *m_variant.Model
}

// NewVariantRepo creates a new VariantRepo.
func NewVariantRepo(client *spanner.Client) contracts.VariantRepository {
	return &VariantRepo{
		client: client,
		model:  m_variant.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new variant.
func (r *VariantRepo) InsertMut(variant *domain.Variant) (*spanner.Mutation, error) {
	data, err := r.domainToData(variant)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a variant. All mutable columns
// are written; variants are small enough that field tracking isn't worth it.
func (r *VariantRepo) UpdateMut(variant *domain.Variant) (*spanner.Mutation, error) {
	adjustment := variant.PriceAdjustment()
	if !adjustment.IsSafeForStorage() {
		return nil, fmt.Errorf("price adjustment exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	percent, start, end := discountToColumns(variant.Discount())

	updates := map[string]interface{}{
		m_variant.Name:                       variant.Name(),
		m_variant.SKU:                        variant.SKU(),
		m_variant.PriceAdjustmentNumerator:   adjustment.Numerator(),
		m_variant.PriceAdjustmentDenominator: adjustment.Denominator(),
		m_variant.DiscountPercent:            percent,
		m_variant.DiscountStartDate:          start,
		m_variant.DiscountEndDate:            end,
		m_variant.Stock:                      variant.Stock(),
	}

	return r.model.UpdateMut(variant.ProductID(), variant.ID(), updates), nil
}

// GetByID retrieves a single variant of a product.
func (r *VariantRepo) GetByID(ctx context.Context, productID, variantID string) (*domain.Variant, error) {
	row, err := r.client.Single().ReadRow(ctx, m_variant.TableName, spanner.Key{productID, variantID}, m_variant.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrVariantNotFound
		}
		return nil, fmt.Errorf("failed to read variant: %w", err)
	}

	var data m_variant.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse variant: %w", err)
	}

	return r.dataToDomain(&data)
}

// ListByProduct retrieves all variants of a product.
func (r *VariantRepo) ListByProduct(ctx context.Context, productID string) ([]*domain.Variant, error) {
	iter := r.client.Single().Read(
		ctx,
		m_variant.TableName,
		spanner.Key{productID}.AsPrefix(),
		m_variant.Columns(),
	)
	defer iter.Stop()

	var variants []*domain.Variant
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate variants: %w", err)
		}

		var data m_variant.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse variant: %w", err)
		}

		variant, err := r.dataToDomain(&data)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}

	return variants, nil
}

// domainToData converts a domain Variant to database Data.
func (r *VariantRepo) domainToData(variant *domain.Variant) (*m_variant.Data, error) {
	adjustment := variant.PriceAdjustment()
	if !adjustment.IsSafeForStorage() {
		return nil, fmt.Errorf("price adjustment exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	data := &m_variant.Data{
		ProductID:                  variant.ProductID(),
		VariantID:                  variant.ID(),
		Name:                       variant.Name(),
		SKU:                        variant.SKU(),
		PriceAdjustmentNumerator:   adjustment.Numerator(),
		PriceAdjustmentDenominator: adjustment.Denominator(),
		Stock:                      variant.Stock(),
		CreatedAt:                  variant.CreatedAt(),
		UpdatedAt:                  variant.UpdatedAt(),
	}

	data.DiscountPercent, data.DiscountStartDate, data.DiscountEndDate = discountToColumns(variant.Discount())

	return data, nil
}

// dataToDomain converts database Data to a domain Variant.
func (r *VariantRepo) dataToDomain(data *m_variant.Data) (*domain.Variant, error) {
	adjustment, err := domain.NewMoney(data.PriceAdjustmentNumerator, data.PriceAdjustmentDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid price adjustment: %w", err)
	}

	discount, err := discountFromColumns(data.DiscountPercent, data.DiscountStartDate, data.DiscountEndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid discount: %w", err)
	}

	return domain.ReconstructVariant(
		data.VariantID,
		data.ProductID,
		data.Name,
		data.SKU,
		adjustment,
		discount,
		data.Stock,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
