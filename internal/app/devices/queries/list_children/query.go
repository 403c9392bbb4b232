package list_children

import (
	"context"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
)

// Request selects one tier of the device catalog. ParentID is empty when
// listing brands.
type Request struct {
	Level    domain.Level
	ParentID string
}

// NodeDTO is a data transfer object for a device-catalog node.
type NodeDTO struct {
	NodeID       string
	ParentID     string
	Name         string
	ImageURL     string
	DisplayOrder int64
}

// Query handles the list children query use case.
type Query struct {
	repo contracts.NodeRepository
}

// NewQuery creates a new list children query.
func NewQuery(repo contracts.NodeRepository) *Query {
	return &Query{repo: repo}
}

// Execute lists the nodes one tier down from ParentID in display order.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*NodeDTO, error) {
	if _, err := domain.ParseLevel(string(req.Level)); err != nil {
		return nil, err
	}
	if req.Level != domain.LevelBrand && req.ParentID == "" {
		return nil, domain.ErrMissingParent
	}

	nodes, err := q.repo.ListChildren(ctx, req.Level, req.ParentID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*NodeDTO, 0, len(nodes))
	for _, node := range nodes {
		dtos = append(dtos, &NodeDTO{
			NodeID:       node.ID(),
			ParentID:     node.ParentID(),
			Name:         node.Name(),
			ImageURL:     node.ImageURL(),
			DisplayOrder: node.DisplayOrder(),
		})
	}
	return dtos, nil
}
