package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"lengolf/internal/port"
)

type pdfRenderer struct{}

// NewPDFRenderer creates an InvoiceRenderer producing A4 PDF documents.
func NewPDFRenderer() port.InvoiceRenderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(input port.RenderInput) ([]byte, error) {
	comp := input.Computation
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Issuer block
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 8, input.Company.Name)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, input.Company.AddressLine1)
	pdf.Ln(5)
	pdf.Cell(0, 5, input.Company.AddressLine2)
	pdf.Ln(5)
	if input.Company.TaxID != "" {
		pdf.Cell(0, 5, "Tax ID: "+input.Company.TaxID)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Title and invoice metadata
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, "WITHHOLDING TAX INVOICE")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(95, 5, "Invoice No: "+comp.InvoiceNumber)
	pdf.Cell(0, 5, "Date: "+comp.InvoiceDate)
	pdf.Ln(10)

	// Supplier block
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Supplier")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 5, input.Supplier.Name)
	pdf.Ln(5)
	if input.Supplier.AddressLine1 != "" {
		pdf.Cell(0, 5, input.Supplier.AddressLine1)
		pdf.Ln(5)
	}
	if input.Supplier.AddressLine2 != "" {
		pdf.Cell(0, 5, input.Supplier.AddressLine2)
		pdf.Ln(5)
	}
	if input.Supplier.TaxID != "" {
		pdf.Cell(0, 5, "Tax ID: "+input.Supplier.TaxID)
		pdf.Ln(5)
	}
	pdf.Ln(6)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(140, 7, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("Amount (%s)", input.Currency), "1", 1, "R", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, item := range comp.Items {
		pdf.CellFormat(140, 7, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, item.Amount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(140, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, comp.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(140, 7, fmt.Sprintf("Withholding Tax (%s%%)", comp.TaxRate.String()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, comp.TaxAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 7, "Total Payable", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, comp.Total.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Payment footer
	if input.Bank.BankName != "" || input.Bank.AccountNumber != "" {
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(0, 6, "Payment Details")
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 10)
		if input.Bank.BankName != "" {
			pdf.Cell(0, 5, "Bank: "+input.Bank.BankName)
			pdf.Ln(5)
		}
		if input.Bank.AccountNumber != "" {
			pdf.Cell(0, 5, "Account: "+input.Bank.AccountNumber)
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
