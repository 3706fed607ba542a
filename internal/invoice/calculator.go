package invoice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lengolf/internal/domain"
)

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "02/01/2006"
)

var oneHundred = decimal.NewFromInt(100)

// Computation is the fully computed invoice, ready for rendering. Values are
// immutable after construction; nothing here is persisted.
type Computation struct {
	InvoiceNumber string            `json:"invoice_number"`
	InvoiceDate   string            `json:"invoice_date"` // DD/MM/YYYY display form
	Items         []domain.LineItem `json:"items"`
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TaxRate       decimal.Decimal   `json:"tax_rate"`
	TaxAmount     decimal.Decimal   `json:"tax_amount"`
	Total         decimal.Decimal   `json:"total"`
}

// Calculate derives withholding-tax totals for the given line items. The tax
// is withheld from the payment, so total = subtotal - tax_amount. Both tax
// amount and total are rounded half-up to 2 decimal places.
func Calculate(items []domain.LineItem, taxRate, invoiceNumber, invoiceDate string) (*Computation, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyInvoice
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(taxRate))
	if err != nil {
		return nil, domain.ErrInvalidRate
	}
	date, err := time.Parse(isoDateLayout, strings.TrimSpace(invoiceDate))
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	taxAmount := subtotal.Mul(rate).Div(oneHundred).Round(2)
	total := subtotal.Sub(taxAmount).Round(2)

	return &Computation{
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   date.Format(displayDateLayout),
		Items:         items,
		Subtotal:      subtotal,
		TaxRate:       rate,
		TaxAmount:     taxAmount,
		Total:         total,
	}, nil
}
