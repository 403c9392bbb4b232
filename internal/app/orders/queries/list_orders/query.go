package list_orders

import (
	"context"
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
)

// Request selects a customer's order history.
type Request struct {
	CustomerID string
	Limit      int64
}

// SummaryDTO is one row of a customer's order history.
type SummaryDTO struct {
	OrderID        string
	Status         string
	DeliveryMethod string
	ItemCount      int
	Total          string
	CreatedAt      time.Time
}

// Query handles the list orders query use case.
type Query struct {
	orders contracts.OrderRepository
}

// NewQuery creates a new list orders query.
func NewQuery(orders contracts.OrderRepository) *Query {
	return &Query{orders: orders}
}

// Execute lists a customer's orders, newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*SummaryDTO, error) {
	orders, err := q.orders.ListByCustomer(ctx, req.CustomerID, req.Limit)
	if err != nil {
		return nil, err
	}

	summaries := make([]*SummaryDTO, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, &SummaryDTO{
			OrderID:        order.ID(),
			Status:         string(order.Status()),
			DeliveryMethod: string(order.DeliveryMethod()),
			ItemCount:      len(order.Items()),
			Total:          order.Total().String(),
			CreatedAt:      order.CreatedAt(),
		})
	}
	return summaries, nil
}
