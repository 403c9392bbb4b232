package m_device

// Table names for the device-catalog hierarchy. All four levels share the same
// column shape; brands have a null parent_id.
const (
	BrandTable  = "device_brands"
	TypeTable   = "device_types"
	SeriesTable = "device_series"
	ModelTable  = "device_models"
)

// Field name constants shared by the hierarchy tables.
const (
	NodeID       = "node_id"
	ParentID     = "parent_id"
	Name         = "name"
	ImageURL     = "image_url"
	DisplayOrder = "display_order"
	CreatedAt    = "created_at"
	UpdatedAt    = "updated_at"
)
