package render_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lengolf/internal/domain"
	"lengolf/internal/invoice"
	"lengolf/internal/port"
	"lengolf/internal/render"
)

func TestPDFRenderer_Render(t *testing.T) {
	items := []domain.LineItem{
		{Description: "Rent", Amount: decimal.RequireFromString("500.00")},
		{Description: "Cleaning", Amount: decimal.RequireFromString("120.50")},
	}
	comp, err := invoice.Calculate(items, "3.00", "202405", "2024-05-31")
	require.NoError(t, err)

	renderer := render.NewPDFRenderer()
	data, err := renderer.Render(port.RenderInput{
		Computation: comp,
		Supplier: &domain.Supplier{
			Name:         "Acme & Co.",
			AddressLine1: "1 Main Road",
			TaxID:        "1234567890123",
		},
		Company: port.CompanyProfile{
			Name:         "LENGOLF CO. LTD.",
			AddressLine1: "540 Mercury Tower, 4 Floor, Unit 407 Ploenchit Road",
			AddressLine2: "Lumpini, Pathumwan, Bangkok 10330",
			TaxID:        "105566207013",
		},
		Bank: port.BankDetails{
			BankName:      "Kasikorn Bank",
			AccountNumber: "123-4-56789-0",
		},
		Currency: "THB",
	})

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFRenderer_RenderWithoutBankDetails(t *testing.T) {
	comp, err := invoice.Calculate(
		[]domain.LineItem{{Description: "Rent", Amount: decimal.RequireFromString("100")}},
		"3.00", "1", "2024-01-01")
	require.NoError(t, err)

	data, err := render.NewPDFRenderer().Render(port.RenderInput{
		Computation: comp,
		Supplier:    &domain.Supplier{Name: "Supplier"},
		Company:     port.CompanyProfile{Name: "LENGOLF CO. LTD."},
		Currency:    "THB",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
