package renderer

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/reconcile"
	"github.com/shopspring/decimal"
)

// Missing is how an absent side is rendered in tables. It must never look
// like a zero.
const Missing = "n/a"

// Formatter formats report values, optionally as money in a currency.
// Its zero value formats plain numbers with two decimals.
type Formatter struct {
	cur *money.Currency
}

// NewFormatter returns a Formatter for the ISO 4217 currency code, or a plain
// one if code is empty.
func NewFormatter(code string) (Formatter, error) {
	if code == "" {
		return Formatter{}, nil
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return Formatter{}, fmt.Errorf("unknown currency %q", code)
	}
	return Formatter{cur: cur}, nil
}

// Value formats a balance, or Missing.
func (f Formatter) Value(v *float64) string {
	if v == nil {
		return Missing
	}
	return f.format(*v)
}

// Delta formats a signed change: "+0.01", "-4054.75" and "0.00", or Missing.
func (f Formatter) Delta(v *float64) string {
	if v == nil {
		return Missing
	}
	s := f.format(*v)
	if *v > 0 {
		return "+" + s
	}
	return s
}

func (f Formatter) format(v float64) string {
	d := decimal.NewFromFloat(v).Round(reconcile.Precision)
	if f.cur == nil {
		return d.StringFixed(reconcile.Precision)
	}
	return f.cur.Formatter().Format(d.Shift(int32(f.cur.Fraction)).IntPart())
}

// Amount formats an activity amount as recorded, without rounding.
func Amount(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
