package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/compose"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/application/service"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/config"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/infrastructure/database"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/infrastructure/repository"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/handler"
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/presentation/http/routes"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/printer"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/raster"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}()

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(db)
	sessionRepo := repository.NewCashSessionRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize the Arabic text rasterizer. The font must carry Arabic
	// presentation forms or shaped text will render as boxes.
	rasterizer, err := raster.NewRasterizer(cfg.Render.FontPath, cfg.Render.CanvasWidthPx)
	if err != nil {
		log.Fatalf("Failed to load font %s: %v", cfg.Render.FontPath, err)
	}

	// The logo is optional; without it documents simply start at the
	// company name line.
	logo, err := compose.LoadLogo(cfg.Render.LogoPath)
	if err != nil {
		log.Printf("Warning: logo unavailable, printing without it: %v", err)
		logo = nil
	}

	composer := compose.NewComposer(rasterizer, logo, compose.Config{
		CompanyName: cfg.Company.Name,
		VATReg:      cfg.Company.VATReg,
		Currency:    cfg.Company.Currency,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()

	// Initialize services
	receiptService := service.NewReceiptService(receiptRepo, sessionRepo)
	sessionService := service.NewCashSessionService(sessionRepo)
	productService := service.NewProductService(productRepo)
	printerService := service.NewPrinterService(
		receiptRepo,
		sessionRepo,
		composer,
		thermalPrinter,
		cfg.Printer.Address,
		cfg.Printer.CharWidth,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Receipt:     handler.NewReceiptHandler(receiptService),
		CashSession: handler.NewCashSessionHandler(sessionService, receiptService),
		Product:     handler.NewProductHandler(productService),
		Print:       handler.NewPrintHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "5000"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	// Serve HTTPS when a certificate pair is configured, plain HTTP
	// otherwise (e.g. behind a reverse proxy).
	if cfg.TLS.CertFile != "" && cfg.TLS.KeyFile != "" {
		if err := router.RunTLS(":"+port, cfg.TLS.CertFile, cfg.TLS.KeyFile); err != nil {
			log.Fatalf("Failed to start HTTPS server: %v", err)
		}
		return
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
