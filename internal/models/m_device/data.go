package m_device

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents one row of any device-hierarchy table
// (brand, type, series or model).
type Data struct {
	NodeID       string             `spanner:"node_id"`
	ParentID     spanner.NullString `spanner:"parent_id"`
	Name         string             `spanner:"name"`
	ImageURL     spanner.NullString `spanner:"image_url"`
	DisplayOrder int64              `spanner:"display_order"`
	CreatedAt    time.Time          `spanner:"created_at"`
	UpdatedAt    time.Time          `spanner:"updated_at"`
}
