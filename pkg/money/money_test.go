package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestFormatter_USD(t *testing.T) {
	f := NewFormatter(currency.USD)

	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"thousands are grouped", 1000, "$1,000.00"},
		{"two decimals", 10, "$10.00"},
		{"zero", 0, "$0.00"},
		{"fraction is rounded", 19.999, "$20.00"},
		{"millions", 1234567.5, "$1,234,567.50"},
		{"negative", -5, "-$5.00"},
		{"negative zero after rounding", -0.001, "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}

func TestFormatter_NonFinite(t *testing.T) {
	f := NewFormatter(currency.USD)

	assert.Equal(t, "$NaN", f.Format(math.NaN()))
	assert.Equal(t, "$Infinity", f.Format(math.Inf(1)))
	assert.Equal(t, "-$Infinity", f.Format(math.Inf(-1)))
}

func TestFormatter_New(t *testing.T) {
	f := NewFormatter(currency.USD)

	m := f.New(20)
	assert.Equal(t, 20.0, m.Amount)
	assert.Equal(t, "$20.00", m.Formatted)
	assert.Equal(t, currency.USD, f.Unit())
}
