package list_products

import (
	"context"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

// Request contains filtering and pagination options.
type Request struct {
	CategoryID string
	Status     string
	PageSize   int
	PageToken  string
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel, clk clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clk,
	}
}

// Execute retrieves a filtered, paginated product list priced as of now.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ListResult, error) {
	filter := &contracts.ListFilter{
		CategoryID: req.CategoryID,
		Status:     req.Status,
		PageSize:   req.PageSize,
		PageToken:  req.PageToken,
	}
	return q.readModel.ListProducts(ctx, filter, q.clock.Now())
}
