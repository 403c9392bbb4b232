package http

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	catalog "github.com/ahmadnk31/5gfones-sub000/internal/app/catalog/domain"
)

// Money and percent values cross the wire as decimal strings ("19.99", "25")
// so clients never deal in binary floats.

func parseMoney(s string) (*catalog.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed amount %q", s)
	}
	return catalog.NewMoneyFromRat(d.Rat()), nil
}

func parseOptionalMoney(s *string) (*catalog.Money, error) {
	if s == nil {
		return nil, nil
	}
	return parseMoney(*s)
}

func parsePercent(s string) (catalog.Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return catalog.Percent{}, fmt.Errorf("malformed percent %q", s)
	}
	return catalog.NewPercent(d.Rat())
}

func parseIntParam(s string) (int, error) {
	return strconv.Atoi(s)
}

func parseOptionalPercent(s *string) (*catalog.Percent, error) {
	if s == nil {
		return nil, nil
	}
	p, err := parsePercent(*s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
