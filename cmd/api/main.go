package main

import (
	"log"
	"os"

	"github.com/bizledger/bizledger-api/internal/application/service"
	"github.com/bizledger/bizledger-api/internal/config"
	"github.com/bizledger/bizledger-api/internal/infrastructure/database"
	"github.com/bizledger/bizledger-api/internal/infrastructure/events"
	"github.com/bizledger/bizledger-api/internal/infrastructure/repository"
	"github.com/bizledger/bizledger-api/internal/presentation/http/handler"
	"github.com/bizledger/bizledger-api/internal/presentation/http/routes"
	"github.com/bizledger/bizledger-api/pkg/utils"
	"github.com/gin-gonic/gin"
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

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize change-event publisher. Redis is optional; without it
	// the app runs with a no-op publisher.
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Redis.URL != "" {
		redisPublisher, err := events.NewRedisPublisher(cfg.Redis.URL, cfg.Redis.ChannelPrefix)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, change events disabled: %v", err)
		} else {
			publisher = redisPublisher
			defer redisPublisher.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	saleOrderRepo := repository.NewSaleOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	vendorService := service.NewVendorService(vendorRepo, publisher)
	customerService := service.NewCustomerService(customerRepo, publisher)
	saleOrderService := service.NewSaleOrderService(saleOrderRepo, customerRepo, sequenceRepo, publisher)
	invoiceService := service.NewInvoiceService(invoiceRepo, vendorRepo, saleOrderRepo, sequenceRepo, publisher)
	expenseService := service.NewExpenseService(expenseRepo, publisher)
	paymentService := service.NewPaymentService(paymentRepo, invoiceRepo, publisher)
	dashboardService := service.NewDashboardService(saleOrderRepo, invoiceRepo, expenseRepo, vendorRepo, customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Vendor:    handler.NewVendorHandler(vendorService),
		Customer:  handler.NewCustomerHandler(customerService),
		SaleOrder: handler.NewSaleOrderHandler(saleOrderService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, paymentService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Export:    handler.NewExportHandler(invoiceService, expenseService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
