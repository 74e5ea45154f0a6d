// Package pricing derives invoice monetary totals from line items and
// adjustments. All functions are pure; the same calculator backs the POS
// cart, the invoice editor and the printed receipt so the three can never
// disagree.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is the minimal shape the calculator needs from a cart or invoice
// line: a quantity and a unit price.
type LineItem struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Totals holds the derived amounts for an invoice or in-progress cart.
type Totals struct {
	SubTotal decimal.Decimal // sum of quantity x unit price
	NetTotal decimal.Decimal // subtotal minus discount, clamped at zero
	Due      decimal.Decimal // net total minus paid; negative on overpayment
}

// Outstanding returns the displayable due amount, clamped at zero. A negative
// Due (overpayment) still travels through Totals unchanged so callers can
// detect it.
func (t Totals) Outstanding() decimal.Decimal {
	if t.Due.IsNegative() {
		return decimal.Zero
	}
	return t.Due
}

// Settled reports whether the invoice is fully paid.
func (t Totals) Settled() bool {
	return !t.Due.IsPositive()
}

// LineSubtotal returns quantity x unit price for a single line.
func LineSubtotal(item LineItem) decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Subtotal sums the line subtotals of all items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(LineSubtotal(item))
	}
	return sum
}

// Compute derives the full totals for a set of line items, a discount and a
// cumulative paid amount. The discount clamp (net total never below zero) is
// applied here, uniformly, so every call site sees the same policy.
func Compute(items []LineItem, discount, paid decimal.Decimal) Totals {
	sub := Subtotal(items)
	net := sub.Sub(discount)
	if net.IsNegative() {
		net = decimal.Zero
	}
	return Totals{
		SubTotal: sub,
		NetTotal: net,
		Due:      net.Sub(paid),
	}
}

// ParseAmount parses a user-supplied monetary string. Empty input is zero;
// anything unparseable is an explicit error rather than a NaN that leaks into
// rendered totals.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("pricing: invalid amount %q: %w", s, err)
	}
	return d, nil
}
