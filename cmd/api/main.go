package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pricing-gp/internal/handler"
	"go-pricing-gp/internal/model"
	"go-pricing-gp/internal/pricing"
	"go-pricing-gp/internal/repository"
	"go-pricing-gp/internal/service"
	"go-pricing-gp/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	appLogger, err := logger.New(os.Getenv("APP_ENV") != "production")
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// 2. Reference data and seed state. There is no database; the dataset
	// lives in memory and moves through the import/export endpoints.
	cfg := pricing.DefaultConfig()
	repo := repository.NewMemoryRepo(seedDataset())

	// 3. Dependency Injection (Wiring Layers)
	catalogService := service.NewCatalogService(repo, cfg, appLogger)
	analysisService := service.NewAnalysisService(repo, cfg)
	datasetService := service.NewDatasetService(repo, appLogger)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	datasetHandler := handler.NewDatasetHandler(datasetService)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "GBSA Pricing Tools v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS

	// 5. Routes
	api := app.Group("/api/v1")

	// Supplier cost management
	api.Get("/suppliers", catalogHandler.GetSuppliers)
	api.Get("/products", catalogHandler.GetProducts)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Put("/products/:id", catalogHandler.UpdateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)
	api.Get("/scrap-values", catalogHandler.GetScrapValues)
	api.Put("/scrap-values", catalogHandler.UpdateScrapValues)

	// GP analysis
	api.Put("/prices", catalogHandler.SetPrice)
	api.Get("/analysis", analysisHandler.GetAnalysis)
	api.Get("/analysis/export", analysisHandler.ExportAnalysis)

	// Dataset file exchange
	api.Get("/dataset/export", datasetHandler.ExportDataset)
	api.Post("/dataset/import", datasetHandler.ImportDataset)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		appLogger.Info("starting server", zap.String("port", port))
		if err := app.Listen(":" + port); err != nil {
			appLogger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("server exited")
}

// seedDataset returns the startup state: the battery catalog the tool ships
// with before any user edits or imports.
func seedDataset() model.Dataset {
	return model.Dataset{
		Suppliers: []model.Supplier{
			{ID: "s1", Name: "Exide"},
			{ID: "s2", Name: "Willard"},
			{ID: "s3", Name: "Electro City"},
			{ID: "s4", Name: "Enertec"},
		},
		SupplierProducts: []model.SupplierProduct{
			// SKU 619
			{ID: "p1", SupplierID: "s1", SupplierSKU: "EX-619", InternalSKU: "619", InvoicePrice: 900, ScrapCategoryID: "sv1"},
			{ID: "p2", SupplierID: "s2", SupplierSKU: "WL-619", InternalSKU: "619", InvoicePrice: 950, ScrapCategoryID: "sv1"},
			{ID: "p3", SupplierID: "s3", SupplierSKU: "EC-619", InternalSKU: "619", InvoicePrice: 700, ScrapCategoryID: "sv2"},
			// SKU 628
			{ID: "p6", SupplierID: "s1", SupplierSKU: "EX-628", InternalSKU: "628", InvoicePrice: 1100, ScrapCategoryID: "sv1"},
			{ID: "p7", SupplierID: "s2", SupplierSKU: "WL-628", InternalSKU: "628", InvoicePrice: 1150, ScrapCategoryID: "sv1"},
			{ID: "p8", SupplierID: "s4", SupplierSKU: "EN-628", InternalSKU: "628", InvoicePrice: 850, ScrapCategoryID: "sv2"},
			// SKU 652
			{ID: "p9", SupplierID: "s1", SupplierSKU: "EX-652", InternalSKU: "652", InvoicePrice: 1500, ScrapCategoryID: "sv1"},
			{ID: "p10", SupplierID: "s2", SupplierSKU: "WL-652", InternalSKU: "652", InvoicePrice: 1550, ScrapCategoryID: "sv1"},
			{ID: "p11", SupplierID: "s3", SupplierSKU: "EC-652", InternalSKU: "652", InvoicePrice: 1200, ScrapCategoryID: "sv3"},
		},
		ScrapValues:  model.DefaultScrapValues(),
		ManualPrices: map[string]float64{},
	}
}
