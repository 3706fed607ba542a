package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"lengolf/internal/config"
	"lengolf/internal/handler"
	"lengolf/internal/logger"
	"lengolf/internal/render"
	"lengolf/internal/repository/postgres"
	"lengolf/internal/router"
	"lengolf/internal/service"
	"lengolf/internal/storage/local"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Setup(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logg := logger.WithComponent("server")

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	supplierRepo := postgres.NewSupplierRepo(db)
	settingRepo := postgres.NewSettingRepo(db)

	// Initialize artifact store and renderer
	store, err := local.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		return fmt.Errorf("failed to initialize artifact store: %w", err)
	}
	renderer := render.NewPDFRenderer()

	// Initialize services
	supplierSvc := service.NewSupplierService(supplierRepo)
	settingSvc := service.NewSettingService(settingRepo)
	invoiceSvc := service.NewInvoiceService(supplierRepo, settingRepo, renderer, store, cfg)

	// Initialize handlers
	supplierH := handler.NewSupplierHandler(supplierSvc)
	settingH := handler.NewSettingHandler(settingSvc)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, supplierH, settingH, invoiceH, healthH)

	logg.Info().Str("port", cfg.Server.Port).Str("artifacts", cfg.Artifacts.Dir).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
