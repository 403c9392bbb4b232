package m_repair

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the repair booking tables.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a booking header.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{
			data.BookingID,
			data.CustomerName,
			data.CustomerEmail,
			data.CustomerPhone,
			data.DeviceModelID,
			data.ProblemNote,
			data.DeliveryMethod,
			data.ScheduledAt,
			data.Status,
			data.SurchargeNum,
			data.SurchargeDenom,
			data.TotalNum,
			data.TotalDenom,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// InsertItemMut creates a Spanner mutation for inserting one repair line.
func (m *Model) InsertItemMut(data *ItemData) *spanner.Mutation {
	return spanner.Insert(
		ItemsTableName,
		ItemColumns(),
		[]interface{}{
			data.BookingID,
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

// UpdateMut creates a Spanner mutation for updating specific booking fields.
func (m *Model) UpdateMut(bookingID string, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, BookingID)
	values = append(values, bookingID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}

// Columns returns the repair_bookings column list for reads.
func Columns() []string {
	return []string{
		BookingID,
		CustomerName,
		CustomerEmail,
		CustomerPhone,
		DeviceModelID,
		ProblemNote,
		DeliveryMethod,
		ScheduledAt,
		Status,
		SurchargeNum,
		SurchargeDenom,
		TotalNum,
		TotalDenom,
		CreatedAt,
		UpdatedAt,
	}
}

// ItemColumns returns the repair_items column list for reads.
func ItemColumns() []string {
	return []string{
		ItemBookingID,
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
