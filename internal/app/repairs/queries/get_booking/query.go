package get_booking

import (
	"context"
	"time"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/contracts"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
)

// Request contains the booking ID to retrieve.
type Request struct {
	BookingID string
}

// ItemDTO is one quoted line for display. Money fields are decimal strings
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

// BookingDTO is a data transfer object for a repair booking.
type BookingDTO struct {
	BookingID     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	DeviceModelID string
	ProblemNote   string
	Handover      string
	ScheduledAt   time.Time
	Status        string
	Items         []ItemDTO
	Surcharge     string
	Total         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Query handles the get booking query use case.
type Query struct {
	bookings contracts.BookingRepository
}

// NewQuery creates a new get booking query.
func NewQuery(bookings contracts.BookingRepository) *Query {
	return &Query{bookings: bookings}
}

// Execute retrieves a booking by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*BookingDTO, error) {
	booking, err := q.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	return toDTO(booking), nil
}

func toDTO(booking *domain.Booking) *BookingDTO {
	dto := &BookingDTO{
		BookingID:     booking.ID(),
		CustomerName:  booking.CustomerName(),
		CustomerEmail: booking.CustomerEmail(),
		CustomerPhone: booking.CustomerPhone(),
		DeviceModelID: booking.DeviceModelID(),
		ProblemNote:   booking.ProblemNote(),
		Handover:      string(booking.Handover()),
		ScheduledAt:   booking.ScheduledAt(),
		Status:        string(booking.Status()),
		Surcharge:     booking.Surcharge().RoundMinorUnit().String(),
		Total:         booking.Total().String(),
		CreatedAt:     booking.CreatedAt(),
		UpdatedAt:     booking.UpdatedAt(),
	}

	for _, item := range booking.Items() {
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
