package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opticore/optipos/internal/application/service"
	"github.com/opticore/optipos/internal/config"
	"github.com/opticore/optipos/internal/domain/store"
	"github.com/opticore/optipos/internal/presentation/http/handler"
	"github.com/opticore/optipos/internal/presentation/http/middleware"
	"github.com/opticore/optipos/internal/presentation/menu"
	"github.com/opticore/optipos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Session  *handler.SessionHandler
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Sales    *handler.SalesHandler
	Payment  *handler.PaymentHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	JobCard  *handler.JobCardHandler
	User     *handler.UserHandler
	Settings *handler.SettingsHandler
	Report   *handler.ReportHandler
	Bank     *handler.BankHandler
	Expense  *handler.ExpenseHandler
	Audit    *handler.AuditHandler
	Printer  *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Sessions        *service.SessionService
	IdempotencyKeys store.IdempotencyStore
	Cfg             *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Session.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Sessions))

		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Session lifecycle
	protected.GET("/auth/me", h.Session.Me)
	protected.POST("/auth/refresh", h.Session.Refresh)
	protected.POST("/auth/logout", h.Session.Logout)

	// Navigation table filtered by the session's permissions
	protected.GET("/menu", h.Menu.List)

	registerPOSRoutes(protected, h, deps)
	registerSalesRoutes(protected, h)
	registerCatalogRoutes(protected, h)
	registerJobCardRoutes(protected, h)
	registerAdminRoutes(protected, h)
	registerLedgerRoutes(protected, h)
	registerReportRoutes(protected, h)
}

func registerPOSRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	pos := protected.Group("/pos")
	pos.Use(middleware.RequirePermission(menu.PermPOS))
	{
		pos.GET("/cart", h.Cart.Get)
		pos.POST("/cart/items", h.Cart.AddItem)
		pos.DELETE("/cart/items/:index", h.Cart.RemoveItem)
		pos.PUT("/cart/customer", h.Cart.SetCustomer)
		pos.PUT("/cart/adjustments", h.Cart.SetAdjustments)
		pos.DELETE("/cart", h.Cart.Clear)

		pos.POST("/hold", h.Cart.Hold)
		pos.GET("/held", h.Cart.ListHeld)
		pos.POST("/held/:id/recall", h.Cart.Recall)
		pos.DELETE("/held/:id", h.Cart.DeleteHeld)

		// Checkout is the one mutation the terminal originates itself, so
		// it alone sits behind the idempotency guard.
		pos.POST("/checkout", middleware.Idempotency(deps.IdempotencyKeys), h.Cart.Checkout)

		pos.GET("/customers/search", h.Customer.Search)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	sales.Use(middleware.RequirePermission(menu.PermSales))
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
		sales.PUT("/:id", h.Sales.Update)
		sales.DELETE("/:id", h.Sales.Delete)

		sales.GET("/:id/receipt", h.Printer.Preview)
		sales.GET("/:id/receipt.png", h.Printer.PNG)
		sales.POST("/:id/print", h.Printer.Print)
	}

	due := protected.Group("/due-collection")
	due.Use(middleware.RequirePermission(menu.PermDueCollection))
	{
		due.GET("", h.Payment.ListDue)
		due.POST("/sales/:id/payment", h.Payment.Record)
		due.PUT("/payments/:id", h.Payment.Update)
		due.DELETE("/payments/:id", h.Payment.Delete)
		due.GET("/payments/history", h.Payment.History)
		due.POST("/legacy", h.Payment.CreateLegacy)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	products.Use(middleware.RequirePermission(menu.PermProducts))
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.POST("", h.Product.Create)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.PUT("/:id/stock", h.Product.IncrementStock)
	}

	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission(menu.PermCustomers))
	{
		customers.GET("", h.Customer.List)
		customers.GET("/search", h.Customer.Search)
		customers.GET("/:id", h.Customer.Get)
		customers.POST("", h.Customer.Create)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerJobCardRoutes(protected *gin.RouterGroup, h *Handlers) {
	jobs := protected.Group("/job-cards")
	jobs.Use(middleware.RequirePermission(menu.PermJobCards))
	{
		jobs.GET("", h.JobCard.List)
		jobs.GET("/:id", h.JobCard.Get)
		jobs.POST("", h.JobCard.Create)
		jobs.PUT("/:id", h.JobCard.Update)
		jobs.POST("/:id/advance", h.JobCard.Advance)
		jobs.DELETE("/:id", h.JobCard.Delete)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission(menu.PermUsers))
	{
		users.GET("", h.User.List)
		users.GET("/permissions", h.User.Permissions)
		users.GET("/:id", h.User.Get)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	settings := protected.Group("/invoice-settings")
	settings.Use(middleware.RequirePermission(menu.PermSettings))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
		settings.POST("/logo", h.Settings.UploadLogo)
		settings.POST("/test-print", h.Printer.TestPrint)
		settings.GET("/printer-status", h.Printer.Status)
	}

	audit := protected.Group("/audit-logs")
	audit.Use(middleware.RequirePermission(menu.PermAuditLogs))
	{
		audit.GET("", h.Audit.List)
		audit.DELETE("/my-logs", h.Audit.DeleteMine)
		audit.DELETE("/:id", h.Audit.Delete)
	}
}

func registerLedgerRoutes(protected *gin.RouterGroup, h *Handlers) {
	bank := protected.Group("/bank")
	bank.Use(middleware.RequirePermission(menu.PermBank))
	{
		bank.GET("/transactions", h.Bank.List)
		bank.POST("/transactions", h.Bank.Create)
		bank.PUT("/transactions/:id", h.Bank.Update)
		bank.DELETE("/transactions/:id", h.Bank.Delete)
		bank.GET("/summary", h.Bank.Summary)
	}

	expenses := protected.Group("/expenses")
	expenses.Use(middleware.RequirePermission(menu.PermExpenses))
	{
		expenses.GET("", h.Expense.List)
		expenses.POST("", h.Expense.Create)
		expenses.PUT("/:id", h.Expense.Update)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission(menu.PermReports))
	{
		reports.GET("/dashboard-stats", h.Report.Dashboard)
		reports.GET("/sales-summary", h.Report.SalesSummary)
		reports.GET("/sales-summary/export", h.Report.ExportSalesSummary)
		reports.GET("/product-performance", h.Report.ProductPerformance)
		reports.GET("/profit-loss", h.Report.ProfitLoss)
	}
}
