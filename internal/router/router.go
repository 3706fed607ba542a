package router

import (
	"github.com/gin-gonic/gin"

	"lengolf/internal/config"
	"lengolf/internal/handler"
	"lengolf/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	supplierH *handler.SupplierHandler,
	settingH *handler.SettingHandler,
	invoiceH *handler.InvoiceHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Supplier management
	suppliers := v1.Group("/suppliers")
	suppliers.POST("", supplierH.Create)
	suppliers.GET("", supplierH.List)
	suppliers.GET("/:id", supplierH.GetByID)
	suppliers.PUT("/:id", supplierH.Update)
	suppliers.DELETE("/:id", supplierH.Delete)

	// Settings
	v1.GET("/settings", settingH.List)
	v1.PUT("/settings", settingH.Update)

	// Invoice generation and artifacts
	invoices := v1.Group("/invoices")
	invoices.GET("/defaults", invoiceH.Defaults)
	invoices.POST("/generate", invoiceH.Generate)
	invoices.GET("/recent", invoiceH.Recent)
	invoices.GET("/files/:filename", invoiceH.Download)

	return r
}
