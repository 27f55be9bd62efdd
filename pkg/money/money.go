// Package money renders amounts in a single fixed currency.
package money

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money pairs a raw amount with its display string. It is computed on read and never stored.
type Money struct {
	Amount    float64
	Formatted string
}

// Formatter formats amounts for one currency. Safe for concurrent use.
type Formatter struct {
	unit    currency.Unit
	symbol  string
	scale   int
	printer *message.Printer
}

// NewFormatter builds a formatter using the en-US grouping and the currency's standard scale.
func NewFormatter(unit currency.Unit) *Formatter {
	p := message.NewPrinter(language.AmericanEnglish)
	scale, _ := currency.Standard.Rounding(unit)

	symbol := strings.TrimSpace(p.Sprint(currency.Symbol(unit)))
	if symbol == "" {
		symbol = unit.String()
	}

	return &Formatter{
		unit:    unit,
		symbol:  symbol,
		scale:   scale,
		printer: p,
	}
}

// Unit returns the currency the formatter renders.
func (f *Formatter) Unit() currency.Unit {
	return f.unit
}

// New returns the Money value for amount.
func (f *Formatter) New(amount float64) Money {
	return Money{Amount: amount, Formatted: f.Format(amount)}
}

// Format renders amount as symbol, grouped integer part and fixed decimals,
// e.g. 1000 -> "$1,000.00" and -5 -> "-$5.00".
func (f *Formatter) Format(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return f.symbol + "NaN"
	case math.IsInf(amount, 1):
		return f.symbol + "Infinity"
	case math.IsInf(amount, -1):
		return "-" + f.symbol + "Infinity"
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := f.printer.Sprint(number.Decimal(amount, number.Scale(f.scale)))
	if sign != "" && isZero(digits) {
		sign = ""
	}
	return sign + f.symbol + digits
}

func isZero(digits string) bool {
	return strings.Trim(digits, "0.,") == ""
}
