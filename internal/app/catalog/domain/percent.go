package domain

import (
	"math/big"
	"strings"
)

// Percent is a discount percentage in [0, 100]. Fractional percentages are kept
// exact as rational numbers. The zero value is a valid "no discount" percent.
type Percent struct {
	rat *big.Rat
}

// NewPercent creates a Percent from a rational value, validating the [0, 100] range.
// Out-of-range input is rejected, never clamped; silently capping a bad percentage
// would mask pricing bugs that under- or over-charge customers.
func NewPercent(rat *big.Rat) (Percent, error) {
	if rat == nil {
		return Percent{}, nil
	}
	if rat.Sign() < 0 || rat.Cmp(hundred) > 0 {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{rat: new(big.Rat).Set(rat)}, nil
}

// NewPercentFromInt creates a Percent from a whole-number percentage.
func NewPercentFromInt(percentage int64) (Percent, error) {
	return NewPercent(big.NewRat(percentage, 1))
}

// ZeroPercent returns the "no discount" percent.
func ZeroPercent() Percent {
	return Percent{}
}

// IsZero returns true when the percent is zero or unset.
func (p Percent) IsZero() bool {
	return p.rat == nil || p.rat.Sign() == 0
}

// GreaterThan returns true if this percent is strictly greater than another.
func (p Percent) GreaterThan(other Percent) bool {
	return p.value().Cmp(other.value()) > 0
}

// Equals returns true if both percents have the same value.
func (p Percent) Equals(other Percent) bool {
	return p.value().Cmp(other.value()) == 0
}

// Rat returns a copy of the percentage as a rational number.
func (p Percent) Rat() *big.Rat {
	return new(big.Rat).Set(p.value())
}

// Multiplier returns percentage/100, the factor of a price removed by the discount.
func (p Percent) Multiplier() *big.Rat {
	return new(big.Rat).Quo(p.value(), hundred)
}

// String renders the percent with trailing zeros trimmed ("25", "12.5").
func (p Percent) String() string {
	s := p.value().FloatString(4)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func (p Percent) value() *big.Rat {
	if p.rat == nil {
		return big.NewRat(0, 1)
	}
	return p.rat
}
