package repo

import (
	"math/big"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_product"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_variant"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

func testPercent(t *testing.T, n int64) domain.Percent {
	t.Helper()
	p, err := domain.NewPercentFromInt(n)
	require.NoError(t, err)
	return p
}

func nullPercent(n int64) spanner.NullNumeric {
	return spanner.NullNumeric{Numeric: *big.NewRat(n, 1), Valid: true}
}

func testReadModel(now time.Time) *ReadModelImpl {
	return &ReadModelImpl{
		calc:  domain.NewPricingCalculator(),
		clock: clock.NewMockClock(now),
	}
}

func productData(now time.Time) *m_product.Data {
	return &m_product.Data{
		ProductID:            "prod-1",
		Name:                 "Screen replacement",
		Description:          "OLED panel swap",
		CategoryID:           "cat-parts",
		BasePriceNumerator:   100,
		BasePriceDenominator: 1,
		Status:               string(domain.StatusActive),
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func variantData(now time.Time) *m_variant.Data {
	return &m_variant.Data{
		ProductID:                  "prod-1",
		VariantID:                  "var-1",
		Name:                       "With waterproofing",
		SKU:                        "SKU-WP",
		PriceAdjustmentNumerator:   20,
		PriceAdjustmentDenominator: 1,
		Stock:                      10,
		CreatedAt:                  now,
		UpdatedAt:                  now,
	}
}

func TestDataToDTO_PricesProductAtNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rm := testReadModel(now)

	data := productData(now)
	data.DiscountPercent = nullPercent(25)

	dto, err := rm.dataToDTO(data, testPercent(t, 5), now)

	require.NoError(t, err)
	assert.Equal(t, "100.00", dto.BasePrice)
	assert.Equal(t, "75.00", dto.EffectivePrice)
	assert.Equal(t, "25", dto.DiscountPercent)
	assert.True(t, dto.DiscountActive)
}

func TestDataToDTO_ExpiredWindowFallsBackToCategory(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rm := testReadModel(now)

	data := productData(now)
	data.DiscountPercent = nullPercent(25)
	data.DiscountEndDate = spanner.NullTime{Time: now.Add(-24 * time.Hour), Valid: true}

	dto, err := rm.dataToDTO(data, testPercent(t, 5), now)

	require.NoError(t, err)
	assert.Equal(t, "95.00", dto.EffectivePrice)
	assert.Equal(t, "5", dto.DiscountPercent)
}

func TestVariantToDTO_OwnDiscountReplacesProducts(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rm := testReadModel(now)

	pdata := productData(now)
	pdata.DiscountPercent = nullPercent(25)
	product, err := rm.toDomainProduct(pdata)
	require.NoError(t, err)

	vdata := variantData(now)
	vdata.DiscountPercent = nullPercent(30)

	dto, err := rm.variantToDTO(product, vdata, testPercent(t, 5), now)

	require.NoError(t, err)
	assert.Equal(t, "20.00", dto.PriceAdjustment)
	assert.Equal(t, "120.00", dto.OriginalPrice)
	assert.Equal(t, "84.00", dto.UnitPrice)
	assert.Equal(t, "30", dto.DiscountPercent)
}

func TestVariantToDTO_InheritsProductDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rm := testReadModel(now)

	pdata := productData(now)
	pdata.DiscountPercent = nullPercent(25)
	product, err := rm.toDomainProduct(pdata)
	require.NoError(t, err)

	dto, err := rm.variantToDTO(product, variantData(now), testPercent(t, 5), now)

	require.NoError(t, err)
	assert.Equal(t, "90.00", dto.UnitPrice)
	assert.Equal(t, "25", dto.DiscountPercent)
}

func TestVariantToDTO_NoDiscountLeavesPercentEmpty(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	rm := testReadModel(now)

	product, err := rm.toDomainProduct(productData(now))
	require.NoError(t, err)

	dto, err := rm.variantToDTO(product, variantData(now), domain.ZeroPercent(), now)

	require.NoError(t, err)
	assert.Equal(t, "120.00", dto.UnitPrice)
	assert.Empty(t, dto.DiscountPercent)
}
