package repo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_variant"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/query"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ReadModelImpl implements ReadModel for Spanner. It reuses the domain
// pricing calculator so list and detail views show exactly the prices that
// checkout will charge.
type ReadModelImpl struct {
	client     *spanner.Client
	categories contracts.CategoryRepository
	calc       *domain.PricingCalculator
	clock      clock.Clock
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client, categories contracts.CategoryRepository, clk clock.Clock) contracts.ReadModel {
	return &ReadModelImpl{
		client:     client,
		categories: categories,
		calc:       domain.NewPricingCalculator(),
		clock:      clk,
	}
}

// GetProductByID retrieves a product DTO with per-variant effective prices.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string, now time.Time) (*contracts.ProductDTO, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
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

	category, err := rm.categories.DiscountFor(ctx, data.CategoryID)
	if err != nil {
		return nil, err
	}

	dto, err := rm.dataToDTO(&data, category, now)
	if err != nil {
		return nil, err
	}

	variants, err := rm.readVariants(ctx, productID)
	if err != nil {
		return nil, err
	}

	product, err := rm.toDomainProduct(&data)
	if err != nil {
		return nil, err
	}

	for _, vd := range variants {
		vdto, err := rm.variantToDTO(product, vd, category, now)
		if err != nil {
			return nil, err
		}
		dto.Variants = append(dto.Variants, vdto)
	}

	return dto, nil
}

// ListProducts retrieves a paginated list of products with filtering.
// Variants are not expanded on list views; the detail view carries them.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter, now time.Time) (*contracts.ListResult, error) {
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	offset := int64(0)
	if filter.PageToken != "" {
		parsed, err := strconv.ParseInt(filter.PageToken, 10, 64)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("malformed page token %q: %w", filter.PageToken, domain.ErrInvalidPageToken)
		}
		offset = parsed
	}

	builder := query.From(m_product.TableName).Select(m_product.Columns()...)
	if filter.CategoryID != "" {
		builder = builder.Where(query.Eq(m_product.CategoryID, filter.CategoryID))
	}
	if filter.Status != "" {
		builder = builder.Where(query.Eq(m_product.Status, filter.Status))
	}

	countStmt := builder.Count().Build()
	totalCount, err := rm.runCount(ctx, countStmt)
	if err != nil {
		return nil, err
	}

	stmt := builder.
		OrderBy(m_product.CreatedAt, query.Desc).
		Limit(int64(pageSize)).
		Offset(offset).
		Build()

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	// Category discounts rarely vary within a page; memoize per request.
	categoryCache := make(map[string]domain.Percent)
	products := make([]*contracts.ProductDTO, 0, pageSize)

	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		category, ok := categoryCache[data.CategoryID]
		if !ok {
			category, err = rm.categories.DiscountFor(ctx, data.CategoryID)
			if err != nil {
				return nil, err
			}
			categoryCache[data.CategoryID] = category
		}

		dto, err := rm.dataToDTO(&data, category, now)
		if err != nil {
			return nil, fmt.Errorf("failed to convert to DTO: %w", err)
		}

		products = append(products, dto)
	}

	nextToken := ""
	if offset+int64(len(products)) < totalCount {
		nextToken = strconv.FormatInt(offset+int64(len(products)), 10)
	}

	return &contracts.ListResult{
		Products:      products,
		NextPageToken: nextToken,
		TotalCount:    totalCount,
	}, nil
}

func (rm *ReadModelImpl) runCount(ctx context.Context, stmt spanner.Statement) (int64, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return 0, fmt.Errorf("failed to read count: %w", err)
	}
	return count, nil
}

func (rm *ReadModelImpl) readVariants(ctx context.Context, productID string) ([]*m_variant.Data, error) {
	iter := rm.client.Single().Read(ctx, m_variant.TableName, spanner.Key{productID}.AsPrefix(), m_variant.Columns())
	defer iter.Stop()

	var out []*m_variant.Data
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
		out = append(out, &data)
	}
	return out, nil
}

// dataToDTO converts product row data to a ProductDTO, pricing it at now.
func (rm *ReadModelImpl) dataToDTO(data *m_product.Data, category domain.Percent, now time.Time) (*contracts.ProductDTO, error) {
	product, err := rm.toDomainProduct(data)
	if err != nil {
		return nil, err
	}

	line, err := rm.calc.BuildLineItem(product, nil, category, now)
	if err != nil {
		return nil, err
	}

	dto := &contracts.ProductDTO{
		ProductID:      data.ProductID,
		Name:           data.Name,
		Description:    data.Description,
		CategoryID:     data.CategoryID,
		ImageURL:       data.ImageURL.StringVal,
		BasePrice:      product.BasePrice().RoundMinorUnit().String(),
		EffectivePrice: line.UnitPrice.String(),
		Status:         data.Status,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if percent := rm.calc.EffectiveDiscount(product.Discount(), category, now); !percent.IsZero() {
		dto.DiscountPercent = percent.String()
		dto.DiscountActive = true
	}

	return dto, nil
}

func (rm *ReadModelImpl) variantToDTO(product *domain.Product, data *m_variant.Data, category domain.Percent, now time.Time) (*contracts.VariantDTO, error) {
	variant, err := rm.toDomainVariant(data)
	if err != nil {
		return nil, err
	}

	line, err := rm.calc.BuildLineItem(product, variant, category, now)
	if err != nil {
		return nil, err
	}

	dto := &contracts.VariantDTO{
		VariantID:       data.VariantID,
		Name:            data.Name,
		SKU:             data.SKU,
		PriceAdjustment: variant.PriceAdjustment().RoundMinorUnit().String(),
		UnitPrice:       line.UnitPrice.String(),
		OriginalPrice:   line.OriginalUnitPrice.String(),
		Stock:           data.Stock,
	}

	if !line.Discount.IsZero() {
		dto.DiscountPercent = line.Discount.String()
	}

	return dto, nil
}

func (rm *ReadModelImpl) toDomainProduct(data *m_product.Data) (*domain.Product, error) {
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
		rm.clock,
	), nil
}

func (rm *ReadModelImpl) toDomainVariant(data *m_variant.Data) (*domain.Variant, error) {
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
