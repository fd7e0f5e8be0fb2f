package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/narmadatraders/billing-api/internal/application/service"
	"github.com/narmadatraders/billing-api/internal/config"
	"github.com/narmadatraders/billing-api/internal/domain/entity"
	"github.com/narmadatraders/billing-api/internal/infrastructure/database"
	"github.com/narmadatraders/billing-api/internal/infrastructure/repository"
	"github.com/narmadatraders/billing-api/internal/presentation/http/handler"
	"github.com/narmadatraders/billing-api/internal/presentation/http/routes"
	"github.com/narmadatraders/billing-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Load the item catalog: from the database when reachable, otherwise
	// the built-in list. The editor state itself never touches the database.
	catalog := loadCatalog(cfg)
	log.Printf("Catalog loaded with %d items", len(catalog))

	// Initialize services
	catalogService := service.NewCatalogService(catalog)
	sessionService := service.NewSessionService(service.SessionServiceConfig{
		TTL:             cfg.Session.TTL,
		CleanupInterval: cfg.Session.CleanupInterval,
	})
	billService := service.NewBillService(catalogService, cfg.Session.MinBillRows)

	// Initialize thermal printer
	thermalPrinter, err := printer.New(printer.Config{
		Type:       cfg.Printer.Type,
		DevicePath: cfg.Printer.USBPath,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printService := service.NewPrintService(thermalPrinter, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session: handler.NewSessionHandler(sessionService),
		Item:    handler.NewItemHandler(sessionService),
		Catalog: handler.NewCatalogHandler(catalogService),
		Bill:    handler.NewBillHandler(sessionService, billService, printService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadCatalog connects to the database, migrates and seeds the catalog table,
// and returns the catalog in natural order. When the database is unreachable
// the built-in catalog (or the configured YAML file) is used instead.
func loadCatalog(cfg *config.Config) []entity.CatalogItem {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Printf("Warning: %v, using built-in catalog", err)
		return fallbackCatalog(cfg)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Printf("Warning: Failed to run migrations: %v, using built-in catalog", err)
		return fallbackCatalog(cfg)
	}

	if err := database.SeedCatalog(db, &cfg.Catalog); err != nil {
		log.Printf("Warning: Failed to seed catalog: %v", err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	catalog, err := catalogRepo.ListAll(context.Background())
	if err != nil || len(catalog) == 0 {
		log.Printf("Warning: Failed to load catalog from database: %v, using built-in catalog", err)
		return fallbackCatalog(cfg)
	}
	return catalog
}

func fallbackCatalog(cfg *config.Config) []entity.CatalogItem {
	if cfg.Catalog.Path != "" {
		items, err := database.LoadCatalogFile(cfg.Catalog.Path)
		if err == nil {
			return items
		}
		log.Printf("Warning: %v", err)
	}
	return entity.DefaultCatalog()
}
