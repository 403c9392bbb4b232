package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_device"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/query"
)

// NodeRepo implements NodeRepository for Spanner. One Model per hierarchy
// table, picked by level.
type NodeRepo struct {
	client *spanner.Client
	models map[domain.Level]*m_device.Model
}

// NewNodeRepo creates a new NodeRepo.
func NewNodeRepo(client *spanner.Client) contracts.NodeRepository {
	return &NodeRepo{
		client: client,
		models: map[domain.Level]*m_device.Model{
			domain.LevelBrand:  m_device.NewModel(m_device.BrandTable),
			domain.LevelType:   m_device.NewModel(m_device.TypeTable),
			domain.LevelSeries: m_device.NewModel(m_device.SeriesTable),
			domain.LevelModel:  m_device.NewModel(m_device.ModelTable),
		},
	}
}

// InsertMut creates a mutation for inserting a hierarchy node.
func (r *NodeRepo) InsertMut(node *domain.Node) *spanner.Mutation {
	model := r.models[node.Level()]
	return model.InsertMut(&m_device.Data{
		NodeID:       node.ID(),
		ParentID:     spanner.NullString{StringVal: node.ParentID(), Valid: node.ParentID() != ""},
		Name:         node.Name(),
		ImageURL:     spanner.NullString{StringVal: node.ImageURL(), Valid: node.ImageURL() != ""},
		DisplayOrder: node.DisplayOrder(),
	})
}

// DeleteMut creates a mutation for deleting a hierarchy node.
func (r *NodeRepo) DeleteMut(level domain.Level, nodeID string) (*spanner.Mutation, error) {
	model, ok := r.models[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}
	return model.DeleteMut(nodeID), nil
}

// GetByID retrieves a node at the given level.
func (r *NodeRepo) GetByID(ctx context.Context, level domain.Level, nodeID string) (*domain.Node, error) {
	model, ok := r.models[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}

	row, err := r.client.Single().ReadRow(ctx, model.Table(), spanner.Key{nodeID}, m_device.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to read %s node: %w", level, err)
	}

	var data m_device.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse %s node: %w", level, err)
	}

	return dataToDomain(level, &data), nil
}

// ListChildren retrieves the nodes one level below parentID, ordered for display.
func (r *NodeRepo) ListChildren(ctx context.Context, level domain.Level, parentID string) ([]*domain.Node, error) {
	model, ok := r.models[level]
	if !ok {
		return nil, domain.ErrUnknownLevel
	}

	builder := query.From(model.Table()).Select(m_device.Columns()...)
	if level == domain.LevelBrand {
		builder = builder.Where(query.IsNull(m_device.ParentID))
	} else {
		builder = builder.Where(query.Eq(m_device.ParentID, parentID))
	}
	stmt := builder.OrderBy(m_device.DisplayOrder, query.Asc).Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var nodes []*domain.Node
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate %s nodes: %w", level, err)
		}

		var data m_device.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse %s node: %w", level, err)
		}
		nodes = append(nodes, dataToDomain(level, &data))
	}

	return nodes, nil
}

// HasChildren reports whether any node one level below references nodeID.
func (r *NodeRepo) HasChildren(ctx context.Context, level domain.Level, nodeID string) (bool, error) {
	childLevel, ok := childOf(level)
	if !ok {
		return false, nil // models are leaves
	}

	model := r.models[childLevel]
	stmt := query.From(model.Table()).
		Where(query.Eq(m_device.ParentID, nodeID)).
		Count().
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("failed to count %s children: %w", childLevel, err)
	}

	var count int64
	if err := row.Column(0, &count); err != nil {
		return false, fmt.Errorf("failed to read child count: %w", err)
	}
	return count > 0, nil
}

func childOf(level domain.Level) (domain.Level, bool) {
	switch level {
	case domain.LevelBrand:
		return domain.LevelType, true
	case domain.LevelType:
		return domain.LevelSeries, true
	case domain.LevelSeries:
		return domain.LevelModel, true
	default:
		return "", false
	}
}

func dataToDomain(level domain.Level, data *m_device.Data) *domain.Node {
	return domain.ReconstructNode(
		data.NodeID,
		level,
		data.ParentID.StringVal,
		data.Name,
		data.ImageURL.StringVal,
		data.DisplayOrder,
		data.CreatedAt,
		data.UpdatedAt,
	)
}
