package quote_booking

import (
	"context"
	"fmt"

	catalogcontracts "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/contracts"
	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/app/repairs/domain"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/clock"
)

// LineRequest is one service or part to include in the quote.
type LineRequest struct {
	ProductID string
	VariantID string
	Quantity  int64
}

// Request describes the repair to quote.
type Request struct {
	Handover domain.HandoverMethod
	Lines    []LineRequest
}

// LineDTO is one priced quote line. Money fields are decimal strings
// rounded to two places.
type LineDTO struct {
	ProductID       string
	VariantID       string
	Name            string
	Quantity        int64
	UnitPrice       string
	OriginalPrice   string
	DiscountPercent string
	LineTotal       string
}

// QuoteDTO is the priced quote. Nothing is persisted; the numbers are only
// binding once the customer books.
type QuoteDTO struct {
	Lines     []LineDTO
	Surcharge string
	Total     string
}

// Query prices a prospective repair without creating a booking.
type Query struct {
	products         catalogcontracts.ProductRepository
	variants         catalogcontracts.VariantRepository
	categories       catalogcontracts.CategoryRepository
	clock            clock.Clock
	calc             *catalog.PricingCalculator
	courierSurcharge *catalog.Money
}

// NewQuery creates a new quote booking query.
func NewQuery(
	products catalogcontracts.ProductRepository,
	variants catalogcontracts.VariantRepository,
	categories catalogcontracts.CategoryRepository,
	clk clock.Clock,
	courierSurcharge *catalog.Money,
) *Query {
	return &Query{
		products:         products,
		variants:         variants,
		categories:       categories,
		clock:            clk,
		calc:             catalog.NewPricingCalculator(),
		courierSurcharge: courierSurcharge,
	}
}

// Execute prices the requested lines at the current instant.
func (q *Query) Execute(ctx context.Context, req *Request) (*QuoteDTO, error) {
	if _, err := domain.ParseHandoverMethod(string(req.Handover)); err != nil {
		return nil, err
	}

	now := q.clock.Now()

	dto := &QuoteDTO{Lines: make([]LineDTO, 0, len(req.Lines))}
	totalLines := make([]catalog.TotalLine, 0, len(req.Lines))

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, catalog.ErrInvalidQuantity
		}

		product, err := q.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		category, err := q.categories.DiscountFor(ctx, product.CategoryID())
		if err != nil {
			return nil, err
		}

		var variant *catalog.Variant
		name := product.Name()
		if line.VariantID != "" {
			variant, err = q.variants.GetByID(ctx, line.ProductID, line.VariantID)
			if err != nil {
				return nil, err
			}
			name = fmt.Sprintf("%s (%s)", product.Name(), variant.Name())
		}

		lineItem, err := q.calc.BuildLineItem(product, variant, category, now)
		if err != nil {
			return nil, err
		}

		discountPercent := lineItem.Discount

		lineTotal := lineItem.UnitPrice.MultiplyInt(line.Quantity)

		dto.Lines = append(dto.Lines, LineDTO{
			ProductID:       line.ProductID,
			VariantID:       line.VariantID,
			Name:            name,
			Quantity:        line.Quantity,
			UnitPrice:       lineItem.UnitPrice.String(),
			OriginalPrice:   lineItem.OriginalUnitPrice.String(),
			DiscountPercent: discountPercent.String(),
			LineTotal:       lineTotal.RoundMinorUnit().String(),
		})
		totalLines = append(totalLines, catalog.TotalLine{
			UnitPrice: lineItem.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	surcharge := catalog.ZeroMoney()
	if req.Handover == domain.HandoverCourier {
		surcharge = q.courierSurcharge.Copy()
	}

	total, err := q.calc.ComputeTotal(totalLines, surcharge)
	if err != nil {
		return nil, err
	}

	dto.Surcharge = surcharge.RoundMinorUnit().String()
	dto.Total = total.String()

	return dto, nil
}
