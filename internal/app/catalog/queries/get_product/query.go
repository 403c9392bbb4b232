package get_product

import (
	"context"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID string
}

// Query handles the get product query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel, clk clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clk,
	}
}

// Execute retrieves a product by ID with effective prices as of now.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.ProductDTO, error) {
	return q.readModel.GetProductByID(ctx, req.ProductID, q.clock.Now())
}
