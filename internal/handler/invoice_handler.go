package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"lengolf/internal/service"
)

// InvoiceHandler handles invoice generation and artifact endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Defaults handles GET /api/v1/invoices/defaults
func (h *InvoiceHandler) Defaults(c *gin.Context) {
	defaults, err := h.invoiceService.Defaults(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, defaults)
}

// Generate handles POST /api/v1/invoices/generate. The body is a url-encoded
// form carrying the scalar fields plus the items[<i>][description|amount]
// line-item keys.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "request body is not a valid form")
		return
	}
	form := c.Request.PostForm

	input := service.GenerateInvoiceInput{
		SupplierID:    form.Get("supplier_id"),
		InvoiceNumber: form.Get("invoice_number"),
		InvoiceDate:   form.Get("invoice_date"),
		TaxRate:       form.Get("tax_rate"),
		Form:          form,
	}

	result, err := h.invoiceService.Generate(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, result)
}

// Recent handles GET /api/v1/invoices/recent
func (h *InvoiceHandler) Recent(c *gin.Context) {
	artifacts, err := h.invoiceService.ListRecent(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, artifacts)
}

// Download handles GET /api/v1/invoices/files/:filename, serving the PDF inline.
func (h *InvoiceHandler) Download(c *gin.Context) {
	rc, artifact, err := h.invoiceService.OpenArtifact(c.Request.Context(), c.Param("filename"))
	if err != nil {
		HandleError(c, err)
		return
	}
	defer rc.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", artifact.Filename),
	}
	c.DataFromReader(http.StatusOK, artifact.Size, "application/pdf", rc, extraHeaders)
}
