package m_device

import (
	"cloud.google.com/go/spanner"
)

// Model provides type-safe mutations for one device-hierarchy table.
type Model struct {
	table string
}

// NewModel creates a Model bound to the given hierarchy table.
func NewModel(table string) *Model {
	return &Model{table: table}
}

// Table returns the bound table name.
func (m *Model) Table() string {
	return m.table
}

// InsertMut creates a Spanner mutation for inserting a hierarchy node.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		m.table,
		Columns(),
		[]interface{}{
			data.NodeID,
			data.ParentID,
			data.Name,
			data.ImageURL,
			data.DisplayOrder,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a hierarchy node.
func (m *Model) DeleteMut(nodeID string) *spanner.Mutation {
	return spanner.Delete(m.table, spanner.Key{nodeID})
}

// Columns returns the shared column list for reads.
func Columns() []string {
	return []string{
		NodeID,
		ParentID,
		Name,
		ImageURL,
		DisplayOrder,
		CreatedAt,
		UpdatedAt,
	}
}
