package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/models/m_repair"
)

// BookingRepo implements BookingRepository for Spanner.
type BookingRepo struct {
	client *spanner.Client
	model  *m_repair.Model
}

// NewBookingRepo creates a new BookingRepo.
func NewBookingRepo(client *spanner.Client) contracts.BookingRepository {
	return &BookingRepo{
		client: client,
		model:  m_repair.NewModel(),
	}
}

// InsertMuts creates the mutations for inserting a booking and its items.
func (r *BookingRepo) InsertMuts(booking *domain.Booking) ([]*spanner.Mutation, error) {
	surcharge := booking.Surcharge()
	total := booking.Total()
	if !surcharge.IsSafeForStorage() || !total.IsSafeForStorage() {
		return nil, fmt.Errorf("booking amounts exceed storage capacity: %w", catalog.ErrMoneyOverflow)
	}

	muts := make([]*spanner.Mutation, 0, len(booking.Items())+1)
	muts = append(muts, r.model.InsertMut(&m_repair.Data{
		BookingID:      booking.ID(),
		CustomerName:   booking.CustomerName(),
		CustomerEmail:  booking.CustomerEmail(),
		CustomerPhone:  spanner.NullString{StringVal: booking.CustomerPhone(), Valid: booking.CustomerPhone() != ""},
		DeviceModelID:  booking.DeviceModelID(),
		ProblemNote:    spanner.NullString{StringVal: booking.ProblemNote(), Valid: booking.ProblemNote() != ""},
		DeliveryMethod: string(booking.Handover()),
		ScheduledAt:    booking.ScheduledAt(),
		Status:         string(booking.Status()),
		SurchargeNum:   surcharge.Numerator(),
		SurchargeDenom: surcharge.Denominator(),
		TotalNum:       total.Numerator(),
		TotalDenom:     total.Denominator(),
	}))

	for idx, item := range booking.Items() {
		if !item.UnitPrice.IsSafeForStorage() || !item.OriginalUnitPrice.IsSafeForStorage() {
			return nil, fmt.Errorf("item price exceeds storage capacity: %w", catalog.ErrMoneyOverflow)
		}
		muts = append(muts, r.model.InsertItemMut(&m_repair.ItemData{
			BookingID:          booking.ID(),
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

// UpdateMut creates a mutation for updating the booking header.
func (r *BookingRepo) UpdateMut(booking *domain.Booking) *spanner.Mutation {
	return r.model.UpdateMut(booking.ID(), map[string]interface{}{
		m_repair.Status: string(booking.Status()),
	})
}

// GetByID retrieves a booking with its quoted items.
func (r *BookingRepo) GetByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	row, err := r.client.Single().ReadRow(ctx, m_repair.TableName, spanner.Key{bookingID}, m_repair.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to read booking: %w", err)
	}

	var data m_repair.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse booking: %w", err)
	}

	items, err := r.readItems(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	return dataToDomain(&data, items)
}

func (r *BookingRepo) readItems(ctx context.Context, bookingID string) ([]domain.BookingItem, error) {
	iter := r.client.Single().Read(ctx, m_repair.ItemsTableName, spanner.Key{bookingID}.AsPrefix(), m_repair.ItemColumns())
	defer iter.Stop()

	var items []domain.BookingItem
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate booking items: %w", err)
		}

		var data m_repair.ItemData
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse booking item: %w", err)
		}

		item, err := itemToDomain(&data)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func itemToDomain(data *m_repair.ItemData) (domain.BookingItem, error) {
	unitPrice, err := catalog.NewMoney(data.UnitPriceNum, data.UnitPriceDenom)
	if err != nil {
		return domain.BookingItem{}, fmt.Errorf("invalid unit price: %w", err)
	}
	originalPrice, err := catalog.NewMoney(data.OriginalPriceNum, data.OriginalPriceDenom)
	if err != nil {
		return domain.BookingItem{}, fmt.Errorf("invalid original price: %w", err)
	}
	percent, err := catalog.NewPercent(&data.DiscountPercent)
	if err != nil {
		return domain.BookingItem{}, fmt.Errorf("stored discount percent out of range: %w", err)
	}

	return domain.BookingItem{
		ProductID:         data.ProductID,
		VariantID:         data.VariantID.StringVal,
		Name:              data.Name,
		Quantity:          data.Quantity,
		UnitPrice:         unitPrice,
		OriginalUnitPrice: originalPrice,
		DiscountPercent:   percent,
	}, nil
}

func dataToDomain(data *m_repair.Data, items []domain.BookingItem) (*domain.Booking, error) {
	surcharge, err := catalog.NewMoney(data.SurchargeNum, data.SurchargeDenom)
	if err != nil {
		return nil, fmt.Errorf("invalid surcharge: %w", err)
	}
	total, err := catalog.NewMoney(data.TotalNum, data.TotalDenom)
	if err != nil {
		return nil, fmt.Errorf("invalid total: %w", err)
	}

	return domain.ReconstructBooking(
		data.BookingID,
		data.CustomerName,
		data.CustomerEmail,
		data.CustomerPhone.StringVal,
		data.DeviceModelID,
		data.ProblemNote.StringVal,
		domain.HandoverMethod(data.DeliveryMethod),
		data.ScheduledAt,
		domain.BookingStatus(data.Status),
		items,
		surcharge,
		total,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
