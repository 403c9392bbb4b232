package repo

import (
	"fmt"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// discountToColumns flattens a nullable discount into its three columns.
// A nil discount yields three nulls; a nil window bound yields a null column.
func discountToColumns(d *domain.Discount) (spanner.NullNumeric, spanner.NullTime, spanner.NullTime) {
	if d == nil {
		return spanner.NullNumeric{}, spanner.NullTime{}, spanner.NullTime{}
	}

	percent := spanner.NullNumeric{Numeric: *d.Percent().Rat(), Valid: true}

	var start, end spanner.NullTime
	if s := d.Start(); s != nil {
		start = spanner.NullTime{Time: *s, Valid: true}
	}
	if e := d.End(); e != nil {
		end = spanner.NullTime{Time: *e, Valid: true}
	}
	return percent, start, end
}

// discountFromColumns rebuilds a discount from its three columns.
// A null percent means no discount at all, regardless of the bound columns.
func discountFromColumns(percent spanner.NullNumeric, start, end spanner.NullTime) (*domain.Discount, error) {
	if !percent.Valid {
		return nil, nil
	}

	p, err := domain.NewPercent(&percent.Numeric)
	if err != nil {
		return nil, fmt.Errorf("stored discount percent out of range: %w", err)
	}

	var startAt, endAt *time.Time
	if start.Valid {
		t := start.Time.UTC()
		startAt = &t
	}
	if end.Valid {
		t := end.Time.UTC()
		endAt = &t
	}

	return domain.NewDiscount(p, startAt, endAt)
}
