package m_order

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the orders tables.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting an order header.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{
			data.OrderID,
			data.CustomerID,
			data.Status,
			data.DeliveryMethod,
			data.SurchargeNum,
			data.SurchargeDenom,
			data.TotalNum,
			data.TotalDenom,
			data.PaymentRef,
			data.Version,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// InsertItemMut creates a Spanner mutation for inserting one order line.
func (m *Model) InsertItemMut(data *ItemData) *spanner.Mutation {
	return spanner.Insert(
		ItemsTableName,
		ItemColumns(),
		[]interface{}{
			data.OrderID,
			data.LineNumber,
			data.ProductID,
			data.VariantID,
			data.Name,
			data.Quantity,
			data.UnitPriceNum,
			data.UnitPriceDenom,
			data.OriginalPriceNum,
			data.OriginalPriceDenom,
			data.DiscountPercent,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific order fields.
func (m *Model) UpdateMut(orderID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, OrderID)
	values = append(values, orderID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// Columns returns the orders column list for reads.
func Columns() []string {
	return []string{
		OrderID,
		CustomerID,
		Status,
		DeliveryMethod,
		SurchargeNum,
		SurchargeDenom,
		TotalNum,
		TotalDenom,
		PaymentRef,
		Version,
		CreatedAt,
		UpdatedAt,
	}
}

// ItemColumns returns the order_items column list for reads.
func ItemColumns() []string {
	return []string{
		ItemOrderID,
		ItemLineNumber,
		ItemProductID,
		ItemVariantID,
		ItemName,
		ItemQuantity,
		ItemUnitPriceNum,
		ItemUnitPriceDenom,
		ItemOriginalPriceNum,
		ItemOriginalPriceDenom,
		ItemDiscountPercent,
	}
}
