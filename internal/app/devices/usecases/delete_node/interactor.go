package delete_node

import (
	"context"
	"fmt"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/devices/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/committer"
)

// Request identifies the node to delete.
type Request struct {
	Level  domain.Level
	NodeID string
}

// Interactor handles the delete node use case.
type Interactor struct {
	repo      contracts.NodeRepository
	committer committer.Applier
}

// NewInteractor creates a new delete node interactor.
func NewInteractor(repo contracts.NodeRepository, committer committer.Applier) *Interactor {
	return &Interactor{
		repo:      repo,
		committer: committer,
	}
}

// Execute deletes a device-catalog node. Nodes with children must be emptied
// bottom-up first; deleting a populated subtree in one call would orphan
// repair bookings referencing the models below it.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if _, err := i.repo.GetByID(ctx, req.Level, req.NodeID); err != nil {
		return err
	}

	hasChildren, err := i.repo.HasChildren(ctx, req.Level, req.NodeID)
	if err != nil {
		return err
	}
	if hasChildren {
		return domain.ErrNodeHasChild
	}

	deleteMut, err := i.repo.DeleteMut(req.Level, req.NodeID)
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(deleteMut)

	if err := i.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
