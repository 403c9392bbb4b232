package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
)

// NodeRepository defines the interface for device-hierarchy persistence.
// Each level lives in its own table; the level picks the table.
type NodeRepository interface {
	// InsertMut creates a mutation for inserting a hierarchy node.
	InsertMut(node *domain.Node) *spanner.Mutation

	// DeleteMut creates a mutation for deleting a hierarchy node.
	DeleteMut(level domain.Level, nodeID string) (*spanner.Mutation, error)

	// GetByID retrieves a node at the given level.
	GetByID(ctx context.Context, level domain.Level, nodeID string) (*domain.Node, error)

	// ListChildren retrieves the nodes one level below parentID, ordered for
	// display. Brands are listed with an empty parentID.
	ListChildren(ctx context.Context, level domain.Level, parentID string) ([]*domain.Node, error)

	// HasChildren reports whether any node one level below references nodeID.
	HasChildren(ctx context.Context, level domain.Level, nodeID string) (bool, error)
}
