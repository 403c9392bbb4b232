package m_variant

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the product_variants table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a variant.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.ProductID,
			data.VariantID,
			data.Name,
			data.SKU,
			data.PriceAdjustmentNumerator,
			data.PriceAdjustmentDenominator,
			data.DiscountPercent,
			data.DiscountStartDate,
			data.DiscountEndDate,
			data.Stock,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific variant fields.
func (m *Model) UpdateMut(productID, variantID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+2)
	values := make([]interface{}, 0, len(updates)+2)

	columns = append(columns, ProductID, VariantID)
	values = append(values, productID, variantID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// DeleteMut creates a Spanner mutation for deleting a variant.
func (m *Model) DeleteMut(productID, variantID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID, variantID})
}

// Columns returns the full column list for reads, primary key first.
func Columns() []string {
	return []string{
		ProductID,
		VariantID,
		Name,
		SKU,
		PriceAdjustmentNumerator,
		PriceAdjustmentDenominator,
		DiscountPercent,
		DiscountStartDate,
		DiscountEndDate,
		Stock,
		CreatedAt,
		UpdatedAt,
	}
}
