// Command seed inserts the default application settings: the issuing company
// profile, the default withholding-tax rate, and empty bank details. Existing
// keys are left untouched, so the command is safe to run repeatedly.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"log"

	"lengolf/internal/config"
	"lengolf/internal/domain"
	"lengolf/internal/repository/postgres"
)

var defaultSettings = map[string]string{
	domain.SettingDefaultWHTRate:    "3.00",
	domain.SettingCompanyName:       "LENGOLF CO. LTD.",
	domain.SettingCompanyAddress1:   "540 Mercury Tower, 4 Floor, Unit 407 Ploenchit Road",
	domain.SettingCompanyAddress2:   "Lumpini, Pathumwan, Bangkok 10330",
	domain.SettingCompanyTaxID:      "105566207013",
	domain.SettingBankName:          "",
	domain.SettingBankAccountNumber: "",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	inserted := 0
	for key, value := range defaultSettings {
		result, err := db.ExecContext(ctx,
			`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (key) DO NOTHING`, key, value)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows > 0 {
			inserted++
		}
	}
	log.Printf("seeded %d of %d default settings", inserted, len(defaultSettings))
	return nil
}
