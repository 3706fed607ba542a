package service

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lengolf/internal/config"
	"lengolf/internal/domain"
	"lengolf/internal/invoice"
	"lengolf/internal/port"
)

// Fallback issuer block used when the settings table has no company profile,
// matching the seeded defaults.
const defaultCompanyName = "LENGOLF CO. LTD."

// GenerateInvoiceInput is the raw form payload for invoice generation. Form
// holds the full payload including the items[<i>][description|amount] keys.
type GenerateInvoiceInput struct {
	SupplierID    string
	InvoiceNumber string
	InvoiceDate   string
	TaxRate       string
	Form          url.Values
}

// GenerateInvoiceResult is the outcome of a successful generation.
type GenerateInvoiceResult struct {
	Filename    string               `json:"filename"`
	Computation *invoice.Computation `json:"computation"`
}

// InvoiceDefaults holds the prefill values for the invoice form.
type InvoiceDefaults struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	TaxRate       string `json:"tax_rate"`
}

// InvoiceService defines the invoice generation contract.
type InvoiceService interface {
	Defaults(ctx context.Context) (*InvoiceDefaults, error)
	Generate(ctx context.Context, input GenerateInvoiceInput) (*GenerateInvoiceResult, error)
	ListRecent(ctx context.Context) ([]domain.Artifact, error)
	OpenArtifact(ctx context.Context, filename string) (io.ReadCloser, *domain.Artifact, error)
}

type invoiceService struct {
	suppliers port.SupplierRepository
	settings  port.SettingRepository
	renderer  port.InvoiceRenderer
	store     port.ArtifactStore
	cfg       *config.Config
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	suppliers port.SupplierRepository,
	settings port.SettingRepository,
	renderer port.InvoiceRenderer,
	store port.ArtifactStore,
	cfg *config.Config,
) InvoiceService {
	return &invoiceService{
		suppliers: suppliers,
		settings:  settings,
		renderer:  renderer,
		store:     store,
		cfg:       cfg,
	}
}

func (s *invoiceService) Defaults(ctx context.Context) (*InvoiceDefaults, error) {
	rate, err := s.settings.Get(ctx, domain.SettingDefaultWHTRate)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		rate = s.cfg.Invoice.FallbackWHTRate
	}
	now := time.Now()
	return &InvoiceDefaults{
		InvoiceNumber: now.Format("200601"),
		InvoiceDate:   now.Format("2006-01-02"),
		TaxRate:       rate,
	}, nil
}

func (s *invoiceService) Generate(ctx context.Context, input GenerateInvoiceInput) (*GenerateInvoiceResult, error) {
	supplierID := strings.TrimSpace(input.SupplierID)
	invoiceNumber := strings.TrimSpace(input.InvoiceNumber)
	invoiceDate := strings.TrimSpace(input.InvoiceDate)
	taxRate := strings.TrimSpace(input.TaxRate)
	if supplierID == "" || invoiceNumber == "" || invoiceDate == "" || taxRate == "" {
		return nil, domain.ErrMissingFields
	}

	id, err := uuid.Parse(supplierID)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items := invoice.ParseLineItems(input.Form)
	comp, err := invoice.Calculate(items, taxRate, invoiceNumber, invoiceDate)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	company := port.CompanyProfile{
		Name:         settingOr(settings, domain.SettingCompanyName, defaultCompanyName),
		AddressLine1: settings[domain.SettingCompanyAddress1],
		AddressLine2: settings[domain.SettingCompanyAddress2],
		TaxID:        settings[domain.SettingCompanyTaxID],
	}
	bank := port.BankDetails{
		BankName:      settings[domain.SettingBankName],
		AccountNumber: settings[domain.SettingBankAccountNumber],
	}

	pdf, err := s.renderer.Render(port.RenderInput{
		Computation: comp,
		Supplier:    supplier,
		Company:     company,
		Bank:        bank,
		Currency:    s.cfg.Invoice.Currency,
	})
	if err != nil {
		return nil, err
	}

	filename := invoice.ArtifactName(supplier.Name, invoiceNumber)
	path, err := s.store.Save(ctx, filename, pdf)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("component", "invoice_service").
		Str("supplier", supplier.Name).
		Str("invoice_number", invoiceNumber).
		Str("subtotal", comp.Subtotal.StringFixed(2)).
		Str("total", comp.Total.StringFixed(2)).
		Str("path", path).
		Msg("generated invoice")

	return &GenerateInvoiceResult{Filename: filename, Computation: comp}, nil
}

func (s *invoiceService) ListRecent(ctx context.Context) ([]domain.Artifact, error) {
	return s.store.ListRecent(ctx, s.cfg.Artifacts.RecentLimit)
}

func (s *invoiceService) OpenArtifact(ctx context.Context, filename string) (io.ReadCloser, *domain.Artifact, error) {
	return s.store.Open(ctx, filename)
}

func settingOr(settings map[string]string, key, fallback string) string {
	if v := settings[key]; v != "" {
		return v
	}
	return fallback
}
