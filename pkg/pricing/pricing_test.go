package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  string
	}{
		{"empty cart", nil, "0"},
		{"single line", []LineItem{{Quantity: 3, UnitPrice: d("10.50")}}, "31.50"},
		{"two lines", []LineItem{{Quantity: 2, UnitPrice: d("50")}, {Quantity: 1, UnitPrice: d("120")}}, "220"},
		{"zero quantity line", []LineItem{{Quantity: 0, UnitPrice: d("99.99")}}, "0"},
		{"fractional price", []LineItem{{Quantity: 3, UnitPrice: d("0.10")}}, "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subtotal(tt.items)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestCompute(t *testing.T) {
	items := []LineItem{{Quantity: 2, UnitPrice: d("50")}, {Quantity: 1, UnitPrice: d("120")}}

	totals := Compute(items, d("20"), d("100"))
	assert.True(t, totals.SubTotal.Equal(d("220")))
	assert.True(t, totals.NetTotal.Equal(d("200")))
	assert.True(t, totals.Due.Equal(d("100")))
	assert.False(t, totals.Settled())
}

func TestComputeDiscountClamp(t *testing.T) {
	items := []LineItem{{Quantity: 1, UnitPrice: d("50")}}

	totals := Compute(items, d("80"), decimal.Zero)
	assert.True(t, totals.NetTotal.IsZero(), "net total must clamp at zero, got %s", totals.NetTotal)
	assert.True(t, totals.Due.IsZero())
}

func TestComputeOverpayment(t *testing.T) {
	items := []LineItem{{Quantity: 1, UnitPrice: d("100")}}

	totals := Compute(items, decimal.Zero, d("150"))
	assert.True(t, totals.Due.Equal(d("-50")), "overpayment must surface as negative due")
	assert.True(t, totals.Outstanding().IsZero(), "displayed due clamps at zero")
	assert.True(t, totals.Settled())
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount(" 12.75 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(d("12.75")))

	got, err = ParseAmount("")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseAmount("12,5")
	assert.Error(t, err, "malformed input must be rejected, not coerced")

	_, err = ParseAmount("abc")
	assert.Error(t, err)
}
