package create_node

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request contains the data needed to add a device-catalog node.
type Request struct {
	Level        domain.Level
	ParentID     string
	Name         string
	ImageURL     string
	DisplayOrder int64
}

// Interactor handles the create node use case.
type Interactor struct {
	repo      contracts.NodeRepository
	committer committer.Applier
	clock     clock.Clock
}

// NewInteractor creates a new create node interactor.
func NewInteractor(repo contracts.NodeRepository, committer committer.Applier, clock clock.Clock) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
		clock:     clock,
	}
}

// Execute adds a node to the device catalog. The parent must already exist at
// the level above.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	nodeID := uuid.New().String()

	node, err := domain.NewNode(nodeID, req.Level, req.ParentID, req.Name, req.ImageURL, req.DisplayOrder, i.clock.Now())
	if err != nil {
		return "", err
	}

	if parentLevel, ok := req.Level.Parent(); ok {
		if _, err := i.repo.GetByID(ctx, parentLevel, req.ParentID); err != nil {
			if err == domain.ErrNodeNotFound {
				return "", domain.ErrParentNotFound
			}
			return "", err
		}
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.InsertMut(node))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nodeID, nil
}
