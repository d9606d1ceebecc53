package main

import (
	_ "facturas/api/swagger" // swagger docs
	"facturas/internal/config"
	"facturas/internal/database"
	"facturas/internal/document"
	"facturas/internal/handler"
	"facturas/internal/logger"
	"facturas/internal/middleware"
	"facturas/internal/repository"
	"facturas/internal/service"
	"facturas/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Facturas API
// @version         1.0
// @description     Invoicing and expense tracking API with tax totals, per-invoice PDFs, and an annual EXPEDIDAS/RECIBIDAS export.
// @host            localhost:8080
// @BasePath        /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	db, err := database.NewConnection(cfg.DatabaseDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("connected to database")

	receipts, err := storage.NewReceiptStore(cfg.ReceiptsDir())
	if err != nil {
		log.Fatal().Err(err).Msg("receipt store init failed")
	}
	renderer, err := document.NewInvoiceRenderer(cfg.Issuer, cfg.PDFDir())
	if err != nil {
		log.Fatal().Err(err).Msg("pdf renderer init failed")
	}

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	clientRepo := repository.NewClientRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	clientService := service.NewClientService(clientRepo, invoiceRepo, txManager)
	supplierService := service.NewSupplierService(supplierRepo, expenseRepo, txManager)
	invoiceService := service.NewInvoiceService(invoiceRepo, clientRepo)
	expenseService := service.NewExpenseService(expenseRepo, supplierRepo, receipts, txManager, logger.WithComponent("expenses"))
	reportService := service.NewReportService(invoiceRepo, expenseRepo, cfg.ExportsDir())

	clientHandler := handler.NewClientHandler(clientService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, renderer)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	reportHandler := handler.NewReportHandler(reportService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	clientHandler.RegisterRoutes(router.Group(""))
	supplierHandler.RegisterRoutes(router.Group(""))
	invoiceHandler.RegisterRoutes(router.Group(""))
	expenseHandler.RegisterRoutes(router.Group(""))
	reportHandler.RegisterRoutes(router.Group(""))

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
