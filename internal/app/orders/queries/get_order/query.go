package get_order

import (
	"context"
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
)

// Request contains the order ID to retrieve.
type Request struct {
	OrderID string
}

// ItemDTO is one order line for display. Money fields are decimal strings
// rounded to two places.
type ItemDTO struct {
	ProductID       string
	VariantID       string
	Name            string
	Quantity        int64
	UnitPrice       string
	OriginalPrice   string
	DiscountPercent string
}

// OrderDTO is a data transfer object for an order.
type OrderDTO struct {
	OrderID        string
	CustomerID     string
	Status         string
	DeliveryMethod string
	Items          []ItemDTO
	Surcharge      string
	Total          string
	PaymentRef     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Query handles the get order query use case.
type Query struct {
	orders contracts.OrderRepository
}

// NewQuery creates a new get order query.
func NewQuery(orders contracts.OrderRepository) *Query {
	return &Query{orders: orders}
}

// Execute retrieves an order by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*OrderDTO, error) {
	order, err := q.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	return toDTO(order), nil
}

func toDTO(order *domain.Order) *OrderDTO {
	dto := &OrderDTO{
		OrderID:        order.ID(),
		CustomerID:     order.CustomerID(),
		Status:         string(order.Status()),
		DeliveryMethod: string(order.DeliveryMethod()),
		Surcharge:      order.Surcharge().RoundMinorUnit().String(),
		Total:          order.Total().String(),
		PaymentRef:     order.PaymentRef(),
		CreatedAt:      order.CreatedAt(),
		UpdatedAt:      order.UpdatedAt(),
	}

	for _, item := range order.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			ProductID:       item.ProductID,
			VariantID:       item.VariantID,
			Name:            item.Name,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice.String(),
			OriginalPrice:   item.OriginalUnitPrice.String(),
			DiscountPercent: item.DiscountPercent.String(),
		})
	}

	return dto
}
