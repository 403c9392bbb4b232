package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/orders/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_order"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/query"
)

// OrderRepo implements OrderRepository for Spanner.
type OrderRepo struct {
	client *spanner.Client
	model  *m_order.Model
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(client *spanner.Client) contracts.OrderRepository {
	return &OrderRepo{
		client: client,
		model:  m_order.NewModel(),
	}
}

// InsertMuts creates the mutations for inserting an order and its items.
func (r *OrderRepo) InsertMuts(order *domain.Order) ([]*spanner.Mutation, error) {
	surcharge := order.Surcharge()
	total := order.Total()
	if !surcharge.IsSafeForStorage() || !total.IsSafeForStorage() {
		return nil, fmt.Errorf("order amounts exceed storage capacity: %w", catalog.ErrMoneyOverflow)
	}

	muts := make([]*spanner.Mutation, 0, len(order.Items())+1)
	muts = append(muts, r.model.InsertMut(&m_order.Data{
		OrderID:        order.ID(),
		CustomerID:     order.CustomerID(),
		Status:         string(order.Status()),
		DeliveryMethod: string(order.DeliveryMethod()),
		SurchargeNum:   surcharge.Numerator(),
		SurchargeDenom: surcharge.Denominator(),
		TotalNum:       total.Numerator(),
		TotalDenom:     total.Denominator(),
		PaymentRef:     spanner.NullString{StringVal: order.PaymentRef(), Valid: order.PaymentRef() != ""},
		Version:        order.Version(),
	}))

	for idx, item := range order.Items() {
		if !item.UnitPrice.IsSafeForStorage() || !item.OriginalUnitPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("item price exceeds storage capacity: %w", catalog.ErrMoneyOverflow)
		}
		muts = append(muts, r.model.InsertItemMut(&m_order.ItemData{
			OrderID:            order.ID(),
			LineNumber:         int64(idx + 1),
			ProductID:          item.ProductID,
			VariantID:          spanner.NullString{StringVal: item.VariantID, Valid: item.VariantID != ""},
			Name:               item.Name,
			Quantity:           item.Quantity,
			UnitPriceNum:       item.UnitPrice.Numerator(),
			UnitPriceDenom:     item.UnitPrice.Denominator(),
			OriginalPriceNum:   item.OriginalUnitPrice.Numerator(),
			OriginalPriceDenom: item.OriginalUnitPrice.Denominator(),
			DiscountPercent:    *item.DiscountPercent.Rat(),
		}))
	}

	return muts, nil
}

// UpdateMut creates a mutation for updating the order header.
func (r *OrderRepo) UpdateMut(order *domain.Order) *spanner.Mutation {
	return r.model.UpdateMut(order.ID(), map[string]interface{}{
		m_order.Status:     string(order.Status()),
		m_order.PaymentRef: spanner.NullString{StringVal: order.PaymentRef(), Valid: order.PaymentRef() != ""},
		m_order.Version:    order.Version() + 1,
	})
}

// GetByID retrieves an order with its items.
func (r *OrderRepo) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row, err := r.client.Single().ReadRow(ctx, m_order.TableName, spanner.Key{orderID}, m_order.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to read order: %w", err)
	}

	var data m_order.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse order: %w", err)
	}

	items, err := r.readItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return r.dataToDomain(&data, items)
}

// ListByCustomer retrieves a customer's orders, newest first.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID string, limit int64) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}

	stmt := query.From(m_order.TableName).
		Select(m_order.Columns()...).
		Where(query.Eq(m_order.CustomerID, customerID)).
		OrderBy(m_order.CreatedAt, query.Desc).
		Limit(limit).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var orders []*domain.Order
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate orders: %w", err)
		}

		var data m_order.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order: %w", err)
		}

		items, err := r.readItems(ctx, data.OrderID)
		if err != nil {
			return nil, err
		}

		order, err := r.dataToDomain(&data, items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *OrderRepo) readItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	iter := r.client.Single().Read(ctx, m_order.ItemsTableName, spanner.Key{orderID}.AsPrefix(), m_order.ItemColumns())
	defer iter.Stop()

	var items []domain.OrderItem
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate order items: %w", err)
		}

		var data m_order.ItemData
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse order item: %w", err)
		}

		item, err := itemToDomain(&data)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func itemToDomain(data *m_order.ItemData) (domain.OrderItem, error) {
	unitPrice, err := catalog.NewMoney(data.UnitPriceNum, data.UnitPriceDenom)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("invalid unit price: %w", err)
	}
	originalPrice, err := catalog.NewMoney(data.OriginalPriceNum, data.OriginalPriceDenom)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("invalid original price: %w", err)
	}
	percent, err := catalog.NewPercent(&data.DiscountPercent)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("stored discount percent out of range: %w", err)
	}

	return domain.OrderItem{
		ProductID:         data.ProductID,
		VariantID:         data.VariantID.StringVal,
		Name:              data.Name,
		Quantity:          data.Quantity,
		UnitPrice:         unitPrice,
		OriginalUnitPrice: originalPrice,
		DiscountPercent:   percent,
	}, nil
}

func (r *OrderRepo) dataToDomain(data *m_order.Data, items []domain.OrderItem) (*domain.Order, error) {
	surcharge, err := catalog.NewMoney(data.SurchargeNum, data.SurchargeDenom)
	if err != nil {
		return nil, fmt.Errorf("invalid surcharge: %w", err)
	}
	total, err := catalog.NewMoney(data.TotalNum, data.TotalDenom)
	if err != nil {
		return nil, fmt.Errorf("invalid total: %w", err)
	}

	return domain.ReconstructOrder(
		data.OrderID,
		data.CustomerID,
		domain.OrderStatus(data.Status),
		domain.DeliveryMethod(data.DeliveryMethod),
		items,
		surcharge,
		total,
		data.PaymentRef.StringVal,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
