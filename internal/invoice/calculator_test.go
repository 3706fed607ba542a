package invoice_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lengolf/internal/domain"
	"lengolf/internal/invoice"
)

func item(description, amount string) domain.LineItem {
	return domain.LineItem{Description: description, Amount: decimal.RequireFromString(amount)}
}

func TestCalculate_WithholdingTotals(t *testing.T) {
	items := []domain.LineItem{item("Rent", "1000.00")}

	comp, err := invoice.Calculate(items, "3.00", "202405", "2024-05-31")

	require.NoError(t, err)
	assert.True(t, comp.Subtotal.Equal(decimal.RequireFromString("1000.00")), "subtotal %s", comp.Subtotal)
	assert.True(t, comp.TaxAmount.Equal(decimal.RequireFromString("30.00")), "tax %s", comp.TaxAmount)
	assert.True(t, comp.Total.Equal(decimal.RequireFromString("970.00")), "total %s", comp.Total)
	assert.Equal(t, "31/05/2024", comp.InvoiceDate)
	assert.Equal(t, "202405", comp.InvoiceNumber)
}

func TestCalculate_RoundingLawHolds(t *testing.T) {
	cases := []struct {
		name    string
		amounts []string
		rate    string
	}{
		{"round number", []string{"1000.00"}, "3.00"},
		{"half-up at third decimal", []string{"335.00"}, "1.5"}, // 5.025 rounds to 5.03
		{"many small items", []string{"0.01", "0.02", "0.03", "99.99"}, "7"},
		{"zero rate", []string{"250.00"}, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var items []domain.LineItem
			for _, a := range tc.amounts {
				items = append(items, item("x", a))
			}

			comp, err := invoice.Calculate(items, tc.rate, "1", "2024-01-01")

			require.NoError(t, err)
			sum := comp.TaxAmount.Add(comp.Total)
			assert.True(t, sum.Equal(comp.Subtotal.Round(2)),
				"tax %s + total %s != subtotal %s", comp.TaxAmount, comp.Total, comp.Subtotal)
		})
	}
}

func TestCalculate_HalfUpRounding(t *testing.T) {
	// 335 * 1.5% = 5.025 -> 5.03 half-up.
	comp, err := invoice.Calculate([]domain.LineItem{item("x", "335.00")}, "1.5", "1", "2024-01-01")

	require.NoError(t, err)
	assert.True(t, comp.TaxAmount.Equal(decimal.RequireFromString("5.03")), "tax %s", comp.TaxAmount)
	assert.True(t, comp.Total.Equal(decimal.RequireFromString("329.97")), "total %s", comp.Total)
}

func TestCalculate_EmptyItems(t *testing.T) {
	comp, err := invoice.Calculate(nil, "3.00", "202405", "2024-05-31")

	assert.Nil(t, comp)
	assert.ErrorIs(t, err, domain.ErrEmptyInvoice)
}

func TestCalculate_InvalidRate(t *testing.T) {
	comp, err := invoice.Calculate([]domain.LineItem{item("Rent", "100")}, "three", "202405", "2024-05-31")

	assert.Nil(t, comp)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestCalculate_InvalidDate(t *testing.T) {
	cases := []string{"31-05-2024", "2024-13-01", "2024-02-30", "", "yesterday"}
	for _, date := range cases {
		comp, err := invoice.Calculate([]domain.LineItem{item("Rent", "100")}, "3.00", "202405", date)

		assert.Nil(t, comp, "date %q", date)
		assert.ErrorIs(t, err, domain.ErrInvalidDate, "date %q", date)
	}
}

func TestCalculate_SubtotalIsExactSum(t *testing.T) {
	items := []domain.LineItem{item("a", "0.10"), item("b", "0.20"), item("c", "0.30")}

	comp, err := invoice.Calculate(items, "3.00", "1", "2024-01-01")

	require.NoError(t, err)
	assert.True(t, comp.Subtotal.Equal(decimal.RequireFromString("0.60")), "subtotal %s", comp.Subtotal)
}
