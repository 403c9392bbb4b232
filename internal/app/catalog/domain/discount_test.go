package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustPercent(t *testing.T, p int64) Percent {
	t.Helper()
	pct, err := NewPercentFromInt(p)
	require.NoError(t, err)
	return pct
}

func TestNewPercent(t *testing.T) {
	t.Run("valid percent", func(t *testing.T) {
		p, err := NewPercentFromInt(20)
		require.NoError(t, err)
		assert.Equal(t, "20", p.String())
	})

	t.Run("fractional percent", func(t *testing.T) {
		p, err := NewPercent(big.NewRat(25, 2)) // 12.5
		require.NoError(t, err)
		assert.Equal(t, "12.5", p.String())
	})

	t.Run("negative percent returns error", func(t *testing.T) {
		_, err := NewPercentFromInt(-1)
		assert.ErrorIs(t, err, ErrInvalidPercent)
		assert.True(t, IsValidation(err))
	})

	t.Run("percent above 100 returns error", func(t *testing.T) {
		_, err := NewPercentFromInt(101)
		assert.ErrorIs(t, err, ErrInvalidPercent)
	})

	t.Run("boundary values accepted", func(t *testing.T) {
		_, err := NewPercentFromInt(0)
		require.NoError(t, err)
		_, err = NewPercentFromInt(100)
		require.NoError(t, err)
	})
}

func TestNewDiscount(t *testing.T) {
	start := utc(2025, 1, 1)
	end := utc(2025, 1, 31)

	t.Run("valid window", func(t *testing.T) {
		d, err := NewDiscount(mustPercent(t, 20), &start, &end)
		require.NoError(t, err)
		assert.Equal(t, "20", d.Percent().String())
	})

	t.Run("single day window allowed", func(t *testing.T) {
		_, err := NewDiscount(mustPercent(t, 20), &start, &start)
		require.NoError(t, err)
	})

	t.Run("end before start returns error", func(t *testing.T) {
		_, err := NewDiscount(mustPercent(t, 20), &end, &start)
		assert.ErrorIs(t, err, ErrInvalidDiscountWindow)
	})

	t.Run("non-UTC bound returns error", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		local := time.Date(2025, 1, 1, 0, 0, 0, 0, loc)
		_, err := NewDiscount(mustPercent(t, 20), &local, &end)
		assert.ErrorIs(t, err, ErrWindowNotUTC)
	})

	t.Run("both bounds optional", func(t *testing.T) {
		d, err := NewDiscount(mustPercent(t, 20), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, d.Start())
		assert.Nil(t, d.End())
	})
}

func TestDiscount_ActiveAt(t *testing.T) {
	start := utc(2025, 1, 1)
	end := utc(2025, 1, 31)

	t.Run("bounded window", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), &start, &end)

		assert.True(t, d.ActiveAt(utc(2025, 1, 15)))
		assert.True(t, d.ActiveAt(start), "inclusive on start")
		assert.True(t, d.ActiveAt(end), "inclusive on end")
		assert.False(t, d.ActiveAt(utc(2024, 12, 31)))
		assert.False(t, d.ActiveAt(utc(2025, 2, 1)))
	})

	t.Run("missing start is active immediately", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), nil, &end)
		assert.True(t, d.ActiveAt(utc(2000, 1, 1)))
		assert.False(t, d.ActiveAt(utc(2025, 2, 1)))
	})

	t.Run("missing end never expires", func(t *testing.T) {
		d, _ := NewDiscount(mustPercent(t, 20), &start, nil)
		assert.False(t, d.ActiveAt(utc(2024, 6, 1)))
		assert.True(t, d.ActiveAt(utc(2099, 1, 1)))
	})

	t.Run("no window always active", func(t *testing.T) {
		d := PermanentDiscount(mustPercent(t, 20))
		assert.True(t, d.ActiveAt(utc(1970, 1, 1)))
		assert.True(t, d.ActiveAt(utc(2100, 1, 1)))
	})
}

func TestDiscount_Copy(t *testing.T) {
	t.Run("nil discount copies to nil", func(t *testing.T) {
		var d *Discount
		assert.Nil(t, d.Copy())
	})

	t.Run("deep copy keeps window", func(t *testing.T) {
		start := utc(2025, 1, 1)
		d, _ := NewDiscount(mustPercent(t, 10), &start, nil)
		c := d.Copy()
		require.NotNil(t, c.Start())
		assert.True(t, c.Start().Equal(start))
		assert.Nil(t, c.End())
	})
}
