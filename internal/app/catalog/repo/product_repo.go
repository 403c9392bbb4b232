package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut creates a mutation for updating a product (only dirty fields).
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_product.Description] = product.Description()
	}

	if changes.Dirty(domain.FieldCategoryID) {
		updates[m_product.CategoryID] = product.CategoryID()
	}

	if changes.Dirty(domain.FieldImageURL) {
		updates[m_product.ImageURL] = spanner.NullString{StringVal: product.ImageURL(), Valid: product.ImageURL() != ""}
	}

	if changes.Dirty(domain.FieldBasePrice) {
		basePrice := product.BasePrice()
		if !basePrice.IsSafeForStorage() {
			return nil, fmt.Errorf("base price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
		}
		updates[m_product.BasePriceNumerator] = basePrice.Numerator()
		updates[m_product.BasePriceDenominator] = basePrice.Denominator()
	}

	if changes.Dirty(domain.FieldDiscount) {
		percent, start, end := discountToColumns(product.Discount())
		updates[m_product.DiscountPercent] = percent
		updates[m_product.DiscountStartDate] = start
		updates[m_product.DiscountEndDate] = end
	}

	if changes.Dirty(domain.FieldStatus) {
		updates[m_product.Status] = string(product.Status())
	}

	if changes.Dirty(domain.FieldArchivedAt) {
		if archivedAt := product.ArchivedAt(); archivedAt != nil {
			updates[m_product.ArchivedAt] = *archivedAt
		} else {
			updates[m_product.ArchivedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil, nil
	}

	// Increment version for optimistic locking
	updates[m_product.Version] = product.Version() + 1

	return r.model.UpdateMut(product.ID(), updates), nil
}

// GetByID retrieves a product by ID, reconstructing the domain aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return r.dataToDomain(&data)
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	basePrice := product.BasePrice()
	if !basePrice.IsSafeForStorage() {
		return nil, fmt.Errorf("price exceeds storage capacity: %w", domain.ErrMoneyOverflow)
	}

	data := &m_product.Data{
		ProductID:            product.ID(),
		Name:                 product.Name(),
		Description:          product.Description(),
		CategoryID:           product.CategoryID(),
		ImageURL:             spanner.NullString{StringVal: product.ImageURL(), Valid: product.ImageURL() != ""},
		BasePriceNumerator:   basePrice.Numerator(),
		BasePriceDenominator: basePrice.Denominator(),
		Status:               string(product.Status()),
		Version:              product.Version(),
		CreatedAt:            product.CreatedAt(),
		UpdatedAt:            product.UpdatedAt(),
	}

	data.DiscountPercent, data.DiscountStartDate, data.DiscountEndDate = discountToColumns(product.Discount())

	if archivedAt := product.ArchivedAt(); archivedAt != nil {
		data.ArchivedAt = spanner.NullTime{Time: *archivedAt, Valid: true}
	}

	return data, nil
}

// dataToDomain converts database Data to a domain Product.
func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	basePrice, err := domain.NewMoney(data.BasePriceNumerator, data.BasePriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid base price: %w", err)
	}

	discount, err := discountFromColumns(data.DiscountPercent, data.DiscountStartDate, data.DiscountEndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid discount: %w", err)
	}

	var archivedAt *time.Time
	if data.ArchivedAt.Valid {
		archivedAt = &data.ArchivedAt.Time
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Name,
		data.Description,
		data.CategoryID,
		data.ImageURL.StringVal,
		basePrice,
		discount,
		domain.ProductStatus(data.Status),
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
		archivedAt,
		r.clock,
	), nil
}
