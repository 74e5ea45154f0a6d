package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/config"
	"github.com/opticore/optipos/internal/domain/store"
	"github.com/opticore/optipos/internal/infrastructure/backend"
	"github.com/opticore/optipos/internal/infrastructure/localstore"
	"github.com/opticore/optipos/internal/presentation/http/handler"
	"github.com/opticore/optipos/internal/presentation/http/routes"
	"github.com/opticore/optipos/pkg/printer"
	"github.com/opticore/optipos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize local stores: Redis when configured, in-memory otherwise
	var (
		holdStore    store.HoldStore
		sessionStore store.SessionStore
		idemStore    store.IdempotencyStore
	)
	if cfg.Redis.Enabled {
		client, err := localstore.NewRedisClient(context.Background(), cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		holdStore = localstore.NewRedisHoldStore(client)
		sessionStore = localstore.NewRedisSessionStore(client)
		idemStore = localstore.NewRedisIdempotencyStore(client)
	} else {
		log.Printf("Warning: Redis disabled, held transactions will not survive a restart")
		holdStore = localstore.NewMemoryHoldStore()
		sessionStore = localstore.NewMemorySessionStore()
		idemStore = localstore.NewMemoryIdempotencyStore()
	}

	// Initialize store API gateways
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	authGateway := backend.NewAuthGateway(client)
	productGateway := backend.NewProductGateway(client)
	customerGateway := backend.NewCustomerGateway(client)
	salesGateway := backend.NewSalesGateway(client)
	jobCardGateway := backend.NewJobCardGateway(client)
	userGateway := backend.NewUserGateway(client)
	settingsGateway := backend.NewSettingsGateway(client)
	auditGateway := backend.NewAuditGateway(client)
	bankGateway := backend.NewBankGateway(client)
	expenseGateway := backend.NewExpenseGateway(client)
	reportGateway := backend.NewReportGateway(client)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	sessionService := service.NewSessionService(authGateway, sessionStore, jwtManager, cfg.JWT.ExpiryHours)
	cartService := service.NewCartService(holdStore, salesGateway, productGateway, customerGateway, cfg.App.TerminalID)
	paymentService := service.NewPaymentService(salesGateway, sessionService)
	receiptService := service.NewReceiptService(salesGateway, settingsGateway, thermalPrinter)
	productService := service.NewProductService(productGateway)
	customerService := service.NewCustomerService(customerGateway)
	jobCardService := service.NewJobCardService(jobCardGateway)
	userService := service.NewUserService(userGateway)
	settingsService := service.NewSettingsService(settingsGateway)
	reportService := service.NewReportService(reportGateway)
	bankService := service.NewBankService(bankGateway)
	expenseService := service.NewExpenseService(expenseGateway)
	auditService := service.NewAuditService(auditGateway)

	// Initialize handlers
	handlers := &routes.Handlers{
		Session:  handler.NewSessionHandler(sessionService),
		Menu:     handler.NewMenuHandler(),
		Cart:     handler.NewCartHandler(cartService),
		Sales:    handler.NewSalesHandler(salesGateway),
		Payment:  handler.NewPaymentHandler(paymentService),
		Product:  handler.NewProductHandler(productService),
		Customer: handler.NewCustomerHandler(customerService),
		JobCard:  handler.NewJobCardHandler(jobCardService),
		User:     handler.NewUserHandler(userService),
		Settings: handler.NewSettingsHandler(settingsService),
		Report:   handler.NewReportHandler(reportService),
		Bank:     handler.NewBankHandler(bankService),
		Expense:  handler.NewExpenseHandler(expenseService),
		Audit:    handler.NewAuditHandler(auditService),
		Printer:  handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Sessions:        sessionService,
		IdempotencyKeys: idemStore,
		Cfg:             cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8090"
	}

	log.Printf("Starting %s on port %s (backend: %s)", cfg.App.Name, port, cfg.Backend.BaseURL)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
