package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	handler "shop-backoffice-backend/internal/handlers"
	"shop-backoffice-backend/internal/repository"
	"shop-backoffice-backend/internal/services/billing"
	"shop-backoffice-backend/internal/services/notify"
	"shop-backoffice-backend/internal/services/reporting"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, log *logrus.Logger) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)
	shopRepo := repository.NewShopRepository(db)
	userRepo := repository.NewUserRepository(db)

	emailSender := notify.NewEmailSender(log)
	billingService := billing.NewService(invoiceRepo, paymentRepo, productRepo, shopRepo, log, emailSender)
	reportingService := reporting.NewService(invoiceRepo, paymentRepo, productRepo, shopRepo, userRepo)

	invoiceHandler := handler.NewInvoiceHandler(billingService, invoiceRepo, paymentRepo)
	paymentHandler := handler.NewPaymentHandler(billingService)
	shopHandler := handler.NewShopHandler(shopRepo)
	productHandler := handler.NewProductHandler(productRepo)
	userHandler := handler.NewUserHandler(userRepo, db)
	reportHandler := handler.NewReportHandler(reportingService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.POST("/legacy-balance", invoiceHandler.AddLegacyBalance)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id/payments", paymentHandler.Record)
	}

	// Shop routes
	shops := api.Group("/shops")
	{
		shops.GET("", shopHandler.List)
		shops.POST("", shopHandler.Create)
		shops.GET("/:id", shopHandler.Get)
		shops.PUT("/:id", shopHandler.Update)
		shops.DELETE("/:id", shopHandler.Delete)
		shops.POST("/:id/distribute-payment", paymentHandler.Distribute)
	}

	// Product routes
	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/low-stock", productHandler.LowStock)
		products.PUT("/:id", productHandler.Update)
		products.POST("/:id/stock", productHandler.AdjustStock)
		products.DELETE("/:id", productHandler.Delete)
	}

	// User administration
	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", userHandler.Create)
		users.PUT("/:id/role", userHandler.SetRole)
		users.DELETE("/:id", userHandler.Delete)
	}

	// Reports
	reports := api.Group("/reports")
	{
		reports.GET("/dashboard", reportHandler.Dashboard)
		reports.GET("/sales-performance", reportHandler.SalesPerformance)
		reports.GET("/invoices/export", reportHandler.ExportInvoices)
	}
}
