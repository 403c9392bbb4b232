package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money", func(t *testing.T) {
		m, err := NewMoney(19999, 100)
		require.NoError(t, err)
		assert.Equal(t, "199.99", m.String())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a, _ := NewMoney(10000, 100) // 100.00
	b, _ := NewMoney(2050, 100)  // 20.50

	t.Run("add", func(t *testing.T) {
		assert.Equal(t, "120.50", a.Add(b).String())
	})

	t.Run("subtract", func(t *testing.T) {
		assert.Equal(t, "79.50", a.Subtract(b).String())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		assert.Equal(t, "61.50", b.MultiplyInt(3).String())
	})

	t.Run("exact comparison", func(t *testing.T) {
		c, _ := NewMoney(100, 1)
		assert.True(t, a.Equals(c))
		assert.True(t, b.LessThan(a))
		assert.True(t, a.GreaterThan(b))
	})
}

func TestMoney_RoundMinorUnit(t *testing.T) {
	cases := []struct {
		name  string
		num   int64
		denom int64
		want  string
	}{
		{"already exact", 19999, 100, "199.99"},
		{"round down", 1499925, 10000, "149.99"},  // 149.9925
		{"half rounds up", 599850, 10000, "59.99"}, // 59.985
		{"round up", 100999, 10000, "10.10"},       // 10.0999
		{"whole number stays", 60, 1, "60.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMoney(tc.num, tc.denom)
			require.NoError(t, err)
			assert.Equal(t, tc.want, m.RoundMinorUnit().String())
		})
	}
}

func TestMoney_MinorUnits(t *testing.T) {
	t.Run("exact amount", func(t *testing.T) {
		m, _ := NewMoney(14999, 100)
		cents, err := m.MinorUnits()
		require.NoError(t, err)
		assert.Equal(t, int64(14999), cents)
	})

	t.Run("sub-cent amount returns error", func(t *testing.T) {
		m, _ := NewMoney(19995, 1000) // 19.995
		_, err := m.MinorUnits()
		assert.Error(t, err)
	})
}

func TestMoney_Copy(t *testing.T) {
	a, _ := NewMoney(5000, 100)
	b := a.Copy()
	b = b.Add(b)

	assert.Equal(t, "50.00", a.String())
	assert.Equal(t, "100.00", b.String())
}
