package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supplier represents a payee the business issues withholding-tax invoices to.
type Supplier struct {
	ID                 uuid.UUID           `db:"id" json:"id"`
	Name               string              `db:"name" json:"name"`
	AddressLine1       string              `db:"address_line1" json:"address_line1"`
	AddressLine2       string              `db:"address_line2" json:"address_line2"`
	TaxID              string              `db:"tax_id" json:"tax_id"`
	DefaultDescription string              `db:"default_description" json:"default_description"`
	DefaultUnitPrice   decimal.NullDecimal `db:"default_unit_price" json:"default_unit_price"`
	CreatedAt          time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updated_at"`
}

// Setting is one key/value configuration row.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Setting keys recognized by the application.
const (
	SettingDefaultWHTRate    = "default_wht_rate"
	SettingCompanyName       = "lengolf_name"
	SettingCompanyAddress1   = "lengolf_address_line1"
	SettingCompanyAddress2   = "lengolf_address_line2"
	SettingCompanyTaxID      = "lengolf_tax_id"
	SettingBankName          = "bank_name"
	SettingBankAccountNumber = "bank_account_number"
)

// LineItem is one billable entry on an invoice. A LineItem only exists after
// validation: non-empty description and strictly positive amount.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Artifact describes one generated invoice PDF in the artifact directory.
type Artifact struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}
