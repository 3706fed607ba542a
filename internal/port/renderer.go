package port

import (
	"lengolf/internal/domain"
	"lengolf/internal/invoice"
)

// CompanyProfile is the issuing entity block printed on the invoice header.
type CompanyProfile struct {
	Name         string
	AddressLine1 string
	AddressLine2 string
	TaxID        string
}

// BankDetails is the payment footer printed on the invoice.
type BankDetails struct {
	BankName      string
	AccountNumber string
}

// RenderInput carries everything the renderer needs to produce the document.
type RenderInput struct {
	Computation *invoice.Computation
	Supplier    *domain.Supplier
	Company     CompanyProfile
	Bank        BankDetails
	Currency    string
}

// InvoiceRenderer produces the printable invoice document as raw bytes.
// Implementations perform no I/O.
type InvoiceRenderer interface {
	Render(input RenderInput) ([]byte, error)
}
